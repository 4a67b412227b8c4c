package ports

import "context"

type Mailer interface {
	SendPasswordReset(ctx context.Context, to, name, token string) error
}
