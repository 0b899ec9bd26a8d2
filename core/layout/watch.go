package layout

import (
	"context"
	"time"
)

// DefaultRevealDelay hides the first layout for a moment so a stale (server-side) layout never flashes.
const DefaultRevealDelay = 100 * time.Millisecond

// Watch resolves a LayoutConfig for every Signals received on resizes (e.g. one per window resize)
// and sends it on the returned channel. The first config is held back for reveal; later ones
// are sent as they come. The channel is closed when ctx is done or resizes is closed; a pending
// reveal timer is stopped on the way out. When resizes closes before the reveal, the held
// config is flushed at once instead of waiting out the delay.
func Watch(
	ctx context.Context,
	r *Resolver,
	platform Platform,
	ovr *Overrides,
	resizes <-chan Signals,
	reveal time.Duration,
) <-chan LayoutConfig {
	out := make(chan LayoutConfig)

	go func() {
		defer close(out)

		var (
			timer    *time.Timer
			revealed = reveal <= 0
			pending  *LayoutConfig
		)
		defer func() {
			if timer != nil {
				timer.Stop()
			}
		}()

		send := func(conf LayoutConfig) bool {
			select {
			case out <- conf:
				return true
			case <-ctx.Done():
				return false
			}
		}

		for {
			var fire <-chan time.Time
			if timer != nil {
				fire = timer.C
			}

			select {
			case <-ctx.Done():
				return

			case s, ok := <-resizes:
				if !ok {
					if pending != nil {
						send(*pending)
					}
					return
				}
				conf := r.Resolve(platform, s, ovr)
				if revealed {
					if !send(conf) {
						return
					}
					continue
				}
				pending = &conf // only the latest layout is revealed
				if timer == nil {
					timer = time.NewTimer(reveal)
				}

			case <-fire:
				timer = nil
				revealed = true
				if pending != nil {
					conf := *pending
					pending = nil
					if !send(conf) {
						return
					}
				}
			}
		}
	}()

	return out
}
