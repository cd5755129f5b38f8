package permissions_test

import (
	"net/http"
	"testing"

	"github.com/Ayy-man/spa-booking-v2-sub002/permissions"
)

func TestGet(t *testing.T) {
	data := permissions.Get()
	if data == nil {
		t.Fatal("expected embedded permissions to load")
	}

	if len(data.Endpoints) == 0 {
		t.Fatal("expected at least one endpoint entry")
	}
}

func TestFindPermissions(t *testing.T) {
	data := permissions.Get()
	if data == nil {
		t.Fatal("expected embedded permissions to load")
	}

	tests := []struct {
		name      string
		path      string
		method    string
		wantSkip  bool
		wantRoles []string
	}{
		{
			name:     "public booking creation",
			path:     "/v1/bookings",
			method:   http.MethodPost,
			wantSkip: true,
		},
		{
			name:     "public availability",
			path:     "/v1/bookings/availability",
			method:   http.MethodGet,
			wantSkip: true,
		},
		{
			name:      "booking listing requires staff or admin",
			path:      "/v1/bookings",
			method:    http.MethodGet,
			wantRoles: []string{"admin", "staff"},
		},
		{
			name:      "catalog mutation requires admin",
			path:      "/v1/services",
			method:    http.MethodPost,
			wantRoles: []string{"admin"},
		},
		{
			name:      "user creation requires admin",
			path:      "/v1/auth/users",
			method:    http.MethodPost,
			wantRoles: []string{"admin"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			permission := data.FindPermissions(tt.path, tt.method)

			if permission.Path == "" {
				t.Fatalf("expected a permission entry for %s %s", tt.method, tt.path)
			}
			if permission.Skip != tt.wantSkip {
				t.Errorf("expected skip to be %v, got %v", tt.wantSkip, permission.Skip)
			}

			for _, role := range tt.wantRoles {
				found := false
				for _, allowed := range permission.Permissions {
					if allowed == role {
						found = true

						break
					}
				}

				if !found {
					t.Errorf("expected role %s to be allowed on %s %s", role, tt.method, tt.path)
				}
			}
		})
	}
}

func TestFindPermissions_UnknownRoute(t *testing.T) {
	data := permissions.Get()
	if data == nil {
		t.Fatal("expected embedded permissions to load")
	}

	permission := data.FindPermissions("/v1/unknown", http.MethodGet)

	if permission.Path != "" {
		t.Errorf("expected empty permission for an unknown route, got %+v", permission)
	}
}
