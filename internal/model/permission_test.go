package model

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanPerform(t *testing.T) {
	tests := []struct {
		name        string
		role        Role
		permissions []string
		task        Task
		want        bool
	}{
		{"admin without permissions", RoleAdmin, nil, TaskHeroImages, true},
		{"editor with wildcard", RoleEditor, []string{"*"}, TaskDocuments, true},
		{"editor with task", RoleEditor, []string{"task1", "task3"}, TaskCertificates, true},
		{"editor without task", RoleEditor, []string{"task1"}, TaskImages, false},
		{"editor with no permissions", RoleEditor, []string{}, TaskRepresentatives, false},
		{"viewer with task", RoleViewer, []string{"task2"}, TaskDocuments, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanPerform(tt.role, tt.permissions, tt.task))
		})
	}
}

func TestCanWrite(t *testing.T) {
	assert.Equal(t, DenialNone, CanWrite(http.MethodGet, RoleViewer, nil, TaskImages))
	assert.Equal(t, DenialNone, CanWrite(http.MethodHead, RoleEditor, nil, TaskImages))
	assert.Equal(t, DenialReadOnly, CanWrite(http.MethodPost, RoleViewer, []string{"*"}, TaskImages))
	assert.Equal(t, DenialReadOnly, CanWrite(http.MethodDelete, RoleViewer, nil, TaskImages))
	assert.Equal(t, DenialPermissions, CanWrite(http.MethodPut, RoleEditor, []string{"task1"}, TaskImages))
	assert.Equal(t, DenialNone, CanWrite(http.MethodPatch, RoleEditor, []string{"task9"}, TaskHeroImages))
	assert.Equal(t, DenialNone, CanWrite(http.MethodPost, RoleAdmin, nil, TaskAnnouncements))
}

func TestDefaultPermissions(t *testing.T) {
	assert.Equal(t, []string{"*"}, DefaultPermissions(RoleAdmin, nil))
	assert.Equal(t, []string{"task1"}, DefaultPermissions(RoleAdmin, []string{"task1"}))
	assert.Equal(t, []string{}, DefaultPermissions(RoleEditor, nil))
	assert.Equal(t, []string{"task4"}, DefaultPermissions(RoleViewer, []string{"task4"}))
}

func TestValidPermission(t *testing.T) {
	assert.True(t, ValidPermission("*"))
	assert.True(t, ValidPermission("task9"))
	assert.False(t, ValidPermission("task10"))
	assert.False(t, ValidPermission(""))
}

func TestRoleValid(t *testing.T) {
	assert.True(t, RoleAdmin.Valid())
	assert.True(t, RoleViewer.Valid())
	assert.False(t, Role("owner").Valid())
}

func TestUserCan(t *testing.T) {
	u := &User{Role: RoleEditor, Permissions: []string{"task6"}}
	assert.True(t, u.Can(TaskHistorical))
	assert.False(t, u.Can(TaskGrampanchayat))
}
