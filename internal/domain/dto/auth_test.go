package dto

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestClaims_HasRole(t *testing.T) {
	tests := []struct {
		name   string
		claims Claims
		role   string
		want   bool
	}{
		{name: "editor granted", claims: Claims{Operator: "ops", Roles: []string{RoleEditor}}, role: RoleEditor, want: true},
		{name: "other role only", claims: Claims{Operator: "ops", Roles: []string{"viewer"}}, role: RoleEditor, want: false},
		{name: "no roles", claims: Claims{Operator: "ops"}, role: RoleEditor, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.claims.HasRole(tt.role))
		})
	}
}
