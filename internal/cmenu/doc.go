// Package cmenu implements context menu controllers and the registry that
// addresses them by id.
//
// A Controller owns two reactive cells (visibility and position) that a
// renderer subscribes to, plus a chain of scripted steps:
//
//	menu.OpenC().HoldC(2 * time.Second).CloseC()
//	menu.Execute(x, y)
//
// Each Execute claims a new generation token. Clear, Open(..., true) and
// Close(true) advance the token as well. A run checks the token before every
// step and stops silently once it no longer owns the current generation.
// Timers are never cancelled, so a hold in progress finishes its wait before
// the run notices it was superseded.
package cmenu
