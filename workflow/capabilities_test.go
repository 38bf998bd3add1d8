package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluate(t *testing.T) {
	tests := []struct {
		name    string
		role    Role
		isOwner bool
		status  Status
		want    Capabilities
	}{
		{
			name: "owner manager on in-progress request",
			role: RoleManager, isOwner: true, status: StatusInProgress,
			want: Capabilities{CanEdit: true, CanDelete: true, EditSurface: SurfaceOwner},
		},
		{
			name: "non-owner team lead can still edit via review surface",
			role: RoleTeamLead, isOwner: false, status: StatusInProgress,
			want: Capabilities{CanEdit: true, EditSurface: SurfaceReview},
		},
		{
			name: "recruiter who is not the owner cannot edit but decides status",
			role: RoleRecruiter, isOwner: false, status: StatusInProgress,
			want: Capabilities{CanChangeStatus: true},
		},
		{
			name: "recruiter who owns the request edits as owner",
			role: RoleRecruiter, isOwner: true, status: StatusInProgress,
			want: Capabilities{CanEdit: true, CanDelete: true, CanChangeStatus: true, EditSurface: SurfaceOwner},
		},
		{
			name: "admin who is not the owner cannot edit but may delete",
			role: RoleAdmin, isOwner: false, status: StatusInProgress,
			want: Capabilities{CanDelete: true},
		},
		{
			name: "accepted request is frozen except JD generation",
			role: RoleManager, isOwner: true, status: StatusAccepted,
			want: Capabilities{CanGenerateJD: true},
		},
		{
			name: "rejected request is fully frozen",
			role: RoleRecruiter, isOwner: false, status: StatusRejected,
			want: Capabilities{},
		},
		{
			name: "JD text not available while in progress",
			role: RoleTeamLead, isOwner: true, status: StatusInProgress,
			want: Capabilities{CanEdit: true, CanDelete: true, EditSurface: SurfaceOwner},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Evaluate(tt.role, tt.isOwner, tt.status))
		})
	}
}

func TestEvaluateTerminalStatesDisableEverything(t *testing.T) {
	roles := []Role{RoleAdmin, RoleRecruiter, RoleManager, RoleTeamLead}
	for _, status := range []Status{StatusAccepted, StatusRejected} {
		for _, role := range roles {
			for _, owner := range []bool{true, false} {
				caps := Evaluate(role, owner, status)
				assert.False(t, caps.CanEdit, "role=%s owner=%v status=%s", role, owner, status)
				assert.False(t, caps.CanDelete, "role=%s owner=%v status=%s", role, owner, status)
				assert.False(t, caps.CanChangeStatus, "role=%s owner=%v status=%s", role, owner, status)
				assert.Equal(t, SurfaceNone, caps.EditSurface)
			}
		}
	}
}

func TestCanView(t *testing.T) {
	roles := []Role{RoleAdmin, RoleRecruiter, RoleManager, RoleTeamLead}
	for _, role := range roles {
		assert.True(t, CanView(role, false), "role=%s", role)
		assert.True(t, CanView(role, true), "role=%s", role)
	}

	assert.True(t, CanView(Role("Intern"), true), "owners always see their own")
	assert.False(t, CanView(Role("Intern"), false))
	assert.False(t, CanView(Role(""), false))
}

// Read access must never be narrower than the capability set: anyone who can
// act on a request can open it.
func TestCanViewCoversEveryGrantedCapability(t *testing.T) {
	roles := []Role{RoleAdmin, RoleRecruiter, RoleManager, RoleTeamLead}
	statuses := []Status{StatusInProgress, StatusAccepted, StatusRejected}
	for _, role := range roles {
		for _, owner := range []bool{true, false} {
			for _, status := range statuses {
				caps := Evaluate(role, owner, status)
				if caps.CanEdit || caps.CanDelete || caps.CanChangeStatus || caps.CanGenerateJD {
					assert.True(t, CanView(role, owner),
						"role=%s owner=%v status=%s grants an action but not read access", role, owner, status)
				}
			}
		}
	}
}

func TestDenialMessage(t *testing.T) {
	tests := []struct {
		name   string
		action Action
		role   Role
		status Status
		want   string
	}{
		{
			name:   "team lead sees the manager wording on terminal requests",
			action: ActionEdit, role: RoleTeamLead, status: StatusRejected,
			want: "Cannot edit. Your request is Rejected by the manager.",
		},
		{
			name:   "other roles see the plain status",
			action: ActionEdit, role: RoleManager, status: StatusRejected,
			want: "Cannot edit. Status is Rejected.",
		},
		{
			name:   "terminal delete uses the same pattern",
			action: ActionDelete, role: RoleAdmin, status: StatusAccepted,
			want: "Cannot delete. Status is Accepted.",
		},
		{
			name:   "status change denied by role",
			action: ActionChangeStatus, role: RoleManager, status: StatusInProgress,
			want: "Only recruiters can change the status of a request.",
		},
		{
			name:   "JD generation before acceptance",
			action: ActionGenerateJD, role: RoleTeamLead, status: StatusInProgress,
			want: "Job description text is only available once the request is Accepted.",
		},
		{
			name:   "edit denied by ownership",
			action: ActionEdit, role: RoleRecruiter, status: StatusInProgress,
			want: "Only the requesting employee can edit this request.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DenialMessage(tt.action, tt.role, tt.status))
		})
	}
}
