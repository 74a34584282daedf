package api

import "context"

type keyType string

const adminSubjectKey keyType = "adminSubject"

// adminSubject is the only principal this service knows about.
const adminSubject = "admin"

func ctxWithAdminSubject(ctx context.Context, subject string) context.Context {
	return context.WithValue(ctx, adminSubjectKey, subject)
}
