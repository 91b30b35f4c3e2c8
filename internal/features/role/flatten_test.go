package role

import (
	"context"
	"reflect"
	"testing"

	"go-temple/internal/features/permission"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func perm(actions ...string) permission.Permission {
	return permission.Permission{
		ID:             primitive.NewObjectID(),
		PermissionName: "donation-manager",
		Actions:        actions,
	}
}

func TestFlattenActions(t *testing.T) {
	tests := []struct {
		name  string
		roles []View
		want  []string
	}{
		{
			name:  "no roles",
			roles: nil,
			want:  []string{},
		},
		{
			name:  "role without permissions contributes nothing",
			roles: []View{{Name: "empty"}},
			want:  []string{},
		},
		{
			name: "single role union",
			roles: []View{
				{Name: "editor", Permissions: []permission.Permission{perm("read", "update")}},
			},
			want: []string{"read", "update"},
		},
		{
			name: "duplicates across roles collapse",
			roles: []View{
				{Name: "viewer", Permissions: []permission.Permission{perm("read")}},
				{Name: "editor", Permissions: []permission.Permission{perm("read", "update")}},
				{Name: "creator", Permissions: []permission.Permission{perm("create"), perm("create", "read")}},
			},
			want: []string{"create", "read", "update"},
		},
		{
			name: "order independent",
			roles: []View{
				{Name: "a", Permissions: []permission.Permission{perm("delete"), perm("create")}},
				{Name: "b", Permissions: []permission.Permission{perm("update"), perm("read")}},
			},
			want: []string{"create", "delete", "read", "update"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := FlattenActions(tt.roles)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("FlattenActions() = %v, want %v", got, tt.want)
			}
		})
	}
}

type fakeRoleRepo struct {
	RoleRepository
	roles []Role
}

func (f *fakeRoleRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]Role, error) {
	var out []Role
	for _, r := range f.roles {
		for _, id := range ids {
			if r.ID == id {
				out = append(out, r)
			}
		}
	}
	return out, nil
}

type fakePermRepo struct {
	permission.PermissionRepository
	perms []permission.Permission
}

func (f *fakePermRepo) FindByIDs(ctx context.Context, ids []primitive.ObjectID) ([]permission.Permission, error) {
	var out []permission.Permission
	for _, p := range f.perms {
		for _, id := range ids {
			if p.ID == id {
				out = append(out, p)
			}
		}
	}
	return out, nil
}

func TestPopulateSkipsDanglingPermissionRefs(t *testing.T) {
	kept := perm("read")
	deleted := primitive.NewObjectID() // no matching permission document

	r := Role{
		ID:            primitive.NewObjectID(),
		Name:          "viewer",
		PermissionIDs: []primitive.ObjectID{kept.ID, deleted},
	}

	svc := &RoleServiceImpl{
		Repo:           &fakeRoleRepo{roles: []Role{r}},
		PermissionRepo: &fakePermRepo{perms: []permission.Permission{kept}},
	}

	views, err := svc.Populate(context.Background(), []primitive.ObjectID{r.ID})
	if err != nil {
		t.Fatalf("Populate failed: %v", err)
	}
	if len(views) != 1 {
		t.Fatalf("len(views) = %d, want 1", len(views))
	}
	if len(views[0].Permissions) != 1 || views[0].Permissions[0].ID != kept.ID {
		t.Errorf("Permissions = %v, want only the resolvable ref", views[0].Permissions)
	}

	if got := FlattenActions(views); !reflect.DeepEqual(got, []string{"read"}) {
		t.Errorf("FlattenActions = %v, want [read]", got)
	}
}
