package transcribe

import "context"

//go:generate go run github.com/maxbrunsfeld/counterfeiter/v6 -generate

//counterfeiter:generate -o fake -fake-name CommandRunner . CommandRunner
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (*Result, error)
}
