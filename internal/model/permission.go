package model

import (
	"net/http"
	"slices"
)

// Role is the coarse account type stored on users.role.
type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleAdmin, RoleEditor, RoleViewer:
		return true
	}
	return false
}

// Task is a content area an editor can be granted write access to.
type Task string

const (
	TaskRepresentatives Task = "task1"
	TaskDocuments       Task = "task2"
	TaskCertificates    Task = "task3"
	TaskImages          Task = "task4"
	TaskInfrastructure  Task = "task5"
	TaskHistorical      Task = "task6"
	TaskGrampanchayat   Task = "task7"
	TaskAnnouncements   Task = "task8"
	TaskHeroImages      Task = "task9"

	// TaskAll grants every task.
	TaskAll Task = "*"
)

// Tasks lists every grantable task in display order.
var Tasks = []Task{
	TaskRepresentatives,
	TaskDocuments,
	TaskCertificates,
	TaskImages,
	TaskInfrastructure,
	TaskHistorical,
	TaskGrampanchayat,
	TaskAnnouncements,
	TaskHeroImages,
}

// ValidPermission reports whether p names a task or the wildcard.
func ValidPermission(p string) bool {
	return p == string(TaskAll) || slices.Contains(Tasks, Task(p))
}

// CanPerform reports whether a user with role and permissions may write to task.
//
// Admins always can. Otherwise the wildcard or the task itself must be granted.
func CanPerform(role Role, permissions []string, task Task) bool {
	if role == RoleAdmin {
		return true
	}
	return slices.Contains(permissions, string(TaskAll)) || slices.Contains(permissions, string(task))
}

// Denial explains why CanWrite refused a request.
type Denial string

const (
	DenialNone        Denial = ""
	DenialReadOnly    Denial = "Viewers have read-only access"
	DenialPermissions Denial = "Insufficient permissions"
)

// CanWrite checks a request with the given HTTP method against task.
// Safe methods are always allowed; viewers may never modify anything.
func CanWrite(method string, role Role, permissions []string, task Task) Denial {
	if method == http.MethodGet || method == http.MethodHead {
		return DenialNone
	}
	if role == RoleViewer {
		return DenialReadOnly
	}
	if !CanPerform(role, permissions, task) {
		return DenialPermissions
	}
	return DenialNone
}

// DefaultPermissions returns the permissions stored for a new account.
// Admins without explicit permissions get the wildcard.
func DefaultPermissions(role Role, permissions []string) []string {
	if role == RoleAdmin && len(permissions) == 0 {
		return []string{string(TaskAll)}
	}
	if permissions == nil {
		return []string{}
	}
	return permissions
}
