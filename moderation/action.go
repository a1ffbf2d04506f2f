package moderation

import (
	"errors"
	"fmt"
	"strings"
)

// Action is a staff decision on an escalated user.
type Action int

const (
	ActionBan Action = iota
	ActionKick
	ActionMute
	ActionNone
)

// ErrUnknownAction is returned for control identifiers outside the
// closed action set.
var ErrUnknownAction = errors.New("unknown decision action")

func (a Action) String() string {
	switch a {
	case ActionBan:
		return "ban"
	case ActionKick:
		return "kick"
	case ActionMute:
		return "mute"
	case ActionNone:
		return "none"
	default:
		return "unknown"
	}
}

// CustomID encodes the action and subject into a component identifier
// of the form "action_subjectUserId".
func (a Action) CustomID(subjectID string) string {
	return fmt.Sprintf("%s_%s", a, subjectID)
}

// ParseAction decodes a component identifier back into an action and
// subject ID. Identifiers that do not name a known action are rejected
// with ErrUnknownAction.
func ParseAction(customID string) (Action, string, error) {
	name, subjectID, ok := strings.Cut(customID, "_")
	if !ok {
		return 0, "", ErrUnknownAction
	}
	switch name {
	case "ban":
		return ActionBan, subjectID, nil
	case "kick":
		return ActionKick, subjectID, nil
	case "mute":
		return ActionMute, subjectID, nil
	case "none":
		return ActionNone, subjectID, nil
	default:
		return 0, "", ErrUnknownAction
	}
}
