package cli

import (
	"strconv"
	"strings"
	"time"

	"github.com/matzehuels/chartr/pkg/errors"
)

// parseMicros parses a time or duration argument. Plain integers are
// microseconds; anything else must be a Go duration such as "1.5s".
func parseMicros(s string) (int64, error) {
	if v, err := strconv.ParseInt(s, 10, 64); err == nil {
		return v, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		return 0, errors.New(errors.ErrCodeInvalidInput, "invalid time %q: want microseconds or a duration such as 1.5s", s)
	}
	return d.Microseconds(), nil
}

// parseFields parses repeated key=value flags. Later keys win.
func parseFields(kvs []string) (map[string]string, error) {
	if len(kvs) == 0 {
		return nil, nil
	}
	fields := make(map[string]string, len(kvs))
	for _, kv := range kvs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidInput, "invalid field %q: want key=value", kv)
		}
		if err := errors.ValidateFieldKey(k); err != nil {
			return nil, err
		}
		fields[k] = v
	}
	return fields, nil
}

// eventArgs holds the positional arguments of add-event after the path.
type eventArgs struct {
	actor    string
	start    int64
	duration *int64
}

// parseEventArgs interprets "<actor> <start> [duration]", or
// "<start> [duration]" when the actor is picked interactively.
func parseEventArgs(args []string, pick bool) (eventArgs, error) {
	var ea eventArgs
	if !pick {
		if len(args) == 0 {
			return ea, errors.New(errors.ErrCodeInvalidInput, "missing actor")
		}
		ea.actor, args = args[0], args[1:]
	}
	switch len(args) {
	case 1, 2:
	case 0:
		return ea, errors.New(errors.ErrCodeInvalidInput, "missing start time")
	default:
		return ea, errors.New(errors.ErrCodeInvalidInput, "too many arguments")
	}

	start, err := parseMicros(args[0])
	if err != nil {
		return ea, err
	}
	ea.start = start
	if len(args) == 2 {
		d, err := parseMicros(args[1])
		if err != nil {
			return ea, err
		}
		if d < 0 {
			return ea, errors.New(errors.ErrCodeInvalidInput, "duration cannot be negative: %s", args[1])
		}
		ea.duration = &d
	}
	return ea, nil
}
