package secureclip

import (
	"errors"
	"sync/atomic"
	"time"

	"github.com/atotto/clipboard"
)

var (
	lastClip    = time.Now().UnixNano()
	clipTimeout = time.Second * 30

	// ErrUnsupported is returned when no clipboard utility is available.
	ErrUnsupported = errors.New("no clipboard available on this system")
)

// Timeout returns how long Clip leaves a password on the clipboard.
func Timeout() time.Duration {
	return clipTimeout
}

// Copy writes `password` to the clipboard and leaves it there. It is meant
// for one-shot commands that exit right after copying.
func Copy(password string) error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll(password)
}

// Clip copies the password given by `password` to the clipboard. The
// clipboard will be cleared Timeout() after the last `Clip` call.
func Clip(password string) error {
	if err := Copy(password); err != nil {
		return err
	}
	now := time.Now().UnixNano()
	atomic.StoreInt64(&lastClip, now)
	go func() {
		time.Sleep(clipTimeout)
		if atomic.LoadInt64(&lastClip) == now {
			clipboard.WriteAll("")
		}
	}()
	return nil
}

// Clear clears the clipboard.
func Clear() error {
	if clipboard.Unsupported {
		return ErrUnsupported
	}
	return clipboard.WriteAll("")
}
