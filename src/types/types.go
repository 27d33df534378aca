package types

// ViewType is an enum for different view state types.
type ViewType int

const (
	ChatStateType ViewType = iota
	ModalStateType
	LoginStateType
)

// ViewState interface is defined in view_state.go
// This file contains other interfaces and types
