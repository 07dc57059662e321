package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
)

// GetOutput returns the raw value the event feed keeps for an output.
func (u *Usecase) GetOutput(ctx context.Context, output string) (string, error) {
	value, err := u.cacheDg.GetOutput(ctx, output)
	if err != nil {
		return "", errors.Wrap(err, "error during GetOutput")
	}
	return value, nil
}
