package simplex

// Exported aliases of unexported identifiers for the external test package.

type Action = action

const (
	ActionPush     = actionPush
	ActionPushStop = actionPushStop
	ActionPhaseTwo = actionPhaseTwo
	ActionStop     = actionStop
)

var Transition = transition
