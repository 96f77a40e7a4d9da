// Package labelflow implements the shipping label creation wizard as a finite
// state machine.
//
// A Machine holds the current State and accepts Events through HandleEvent.
// Every accepted event produces exactly one SideEffect, which is stored in a
// single-slot EffectCell: a newer effect overwrites an older one that nobody
// read yet. The machine never calls collaborators itself; effects such as
// LoadData and ValidateAddress only declare the work a driver has to do and
// the driver feeds the result back in as another event.
//
// Wizard progress lives in Data.StepsDone, a set that only grows during one
// run:
//
//	Idle ──FlowStarted──> DataLoading ──DataLoaded──> WaitingForUser{ORIGIN_ADDRESS}
//	                          │
//	                          └──DataLoadingFailed──> DataLoadingFailure
//
//	WaitingForUser ──…Started / Edit…Requested──> step state ──completion──> WaitingForUser{+next step}
//
// An event that the current state does not accept is a protocol violation:
// HandleEvent returns a *ProtocolViolationError and leaves both the state and
// the effect untouched.
//
// A Machine is not safe for concurrent writers; callers serialize HandleEvent.
package labelflow
