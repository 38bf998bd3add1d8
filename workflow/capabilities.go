package workflow

import "fmt"

// Action names a user-visible operation on a request, used when composing a
// denial message for a refused one.
type Action string

const (
	ActionEdit         Action = "edit"
	ActionDelete       Action = "delete"
	ActionChangeStatus Action = "change status"
	ActionGenerateJD   Action = "generate job description"
)

// EditSurface selects which edit form a permitted viewer is routed to. The
// owner gets the full job-description editor; a permitted non-owner reviewer
// gets the panel/tracker review form.
type EditSurface string

const (
	SurfaceNone   EditSurface = ""
	SurfaceOwner  EditSurface = "owner-form"
	SurfaceReview EditSurface = "review-form"
)

// Capabilities is the visible-action set for one (viewer, request) pair.
type Capabilities struct {
	CanEdit         bool
	CanDelete       bool
	CanChangeStatus bool
	CanGenerateJD   bool
	EditSurface     EditSurface
}

// Evaluate maps (role, isOwner, status) to the capability set. This is the
// single source of truth for request visibility rules; the HTTP layer and
// any client render from it.
//
//   - Edit: the owner, or any viewer whose role is neither Recruiter nor
//     Admin, while the request is still InProgress.
//   - Status/feedback: recruiters only, while InProgress.
//   - Delete: the owner or an admin, while InProgress.
//   - JD text: anyone, but only once the request is Accepted.
func Evaluate(role Role, isOwner bool, status Status) Capabilities {
	terminal := status.Terminal()

	caps := Capabilities{
		CanEdit:         !terminal && (isOwner || (role != RoleRecruiter && role != RoleAdmin)),
		CanDelete:       !terminal && (isOwner || role == RoleAdmin),
		CanChangeStatus: !terminal && role == RoleRecruiter,
		CanGenerateJD:   status == StatusAccepted,
	}

	if caps.CanEdit {
		if isOwner {
			caps.EditSurface = SurfaceOwner
		} else {
			caps.EditSurface = SurfaceReview
		}
	}

	return caps
}

// CanView reports whether a viewer may open a request's detail page at all.
// Owners, recruiters and admins always can; managers and team leads can open
// other employees' requests too, because they review them and sit on
// interview panels. Only an unrecognized role is refused, so read access is
// never narrower than the capability set.
func CanView(role Role, isOwner bool) bool {
	if isOwner {
		return true
	}
	switch role {
	case RoleAdmin, RoleRecruiter, RoleManager, RoleTeamLead:
		return true
	}
	return false
}

// DenialMessage explains a refused action to the viewer. The guard condition
// is the same for every role, but the wording is tailored: a team lead is
// told the manager decided their request, everyone else gets the plain
// status.
func DenialMessage(action Action, role Role, status Status) string {
	if status.Terminal() {
		if role == RoleTeamLead {
			return fmt.Sprintf("Cannot %s. Your request is %s by the manager.", action, status)
		}
		return fmt.Sprintf("Cannot %s. Status is %s.", action, status)
	}

	switch action {
	case ActionChangeStatus:
		return "Only recruiters can change the status of a request."
	case ActionDelete:
		return "Only the requesting employee or an admin can delete a request."
	case ActionGenerateJD:
		return "Job description text is only available once the request is Accepted."
	default:
		return "Only the requesting employee can edit this request."
	}
}
