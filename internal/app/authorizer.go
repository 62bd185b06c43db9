package app

import (
	"context"
	"strings"

	"github.com/villagekeep/villagekeep-backend/internal/services"
)

// emailAllowList authorizes moderation for a fixed set of reviewer emails.
// An empty list authorizes every authenticated identity.
type emailAllowList struct {
	emails map[string]struct{}
}

func newEmailAllowList(emails []string) services.Authorizer {
	if len(emails) == 0 {
		return services.AllowAll{}
	}
	set := make(map[string]struct{}, len(emails))
	for _, email := range emails {
		set[strings.ToLower(strings.TrimSpace(email))] = struct{}{}
	}
	return &emailAllowList{emails: set}
}

func (a *emailAllowList) CanModerate(_ context.Context, identity string) bool {
	_, ok := a.emails[strings.ToLower(strings.TrimSpace(identity))]
	return ok
}
