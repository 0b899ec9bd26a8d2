package main

import (
	"fmt"
	"time"

	echoapi "github.com/trezcool/masomo-layout/apps/api/echo"
	"github.com/trezcool/masomo-layout/core"
	"github.com/trezcool/masomo-layout/core/user"
)

// token prints a bearer token the layout API accepts, signed with the configured secret key.
func (cli *commandLine) token(person core.Person, roles []string, ttl time.Duration) error {
	cleaned := make([]string, 0, len(roles))
	for _, role := range roles {
		role = core.CleanString(role, true /* lower */)
		if !user.IsKnownRole(role) {
			return core.NewValidationError(nil, core.FieldError{Field: "roles", Error: fmt.Sprintf("unknown role %q", role)})
		}
		cleaned = append(cleaned, role)
	}

	claims := echoapi.NewClaims(person, cleaned, cli.conf.AppName, ttl)
	token, err := echoapi.GenerateToken(claims, cli.conf.SecretKey)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(cli.out, token)
	return err
}
