// Package ui contains the Bubble Tea program that hosts the context menus.
// Model focuses on message orchestration; dedicated helpers own input,
// menu synchronisation, and rendering.
//
// Message flow:
//   - Bubble Tea invokes Model.Update with incoming messages, which are routed
//     through a typed handler registry so each tea.Msg is handled by a focused
//     function.
//   - Mouse presses are translated into cmenu.MouseEvent values and handed to
//     every hosted controller's Interact with that menu's trigger button. A
//     left press inside an open panel selects the item under the pointer
//     instead.
//   - Key presses move the cursor of the focused panel, filter its items, run
//     the selection, or close every menu.
//
// State ownership:
//   - Visibility and position belong to the cmenu.Controller values. The model
//     never caches them; View reads them on every frame.
//   - Per-menu interactive state (filter, cursor, viewport) lives in
//     internal/ui/state.Panel and is reset whenever a menu reopens.
//
// Controller changes:
//   - Controllers notify their reactive cells from whichever goroutine runs the
//     chain, so subscriptions only post the menu id onto a buffered feed.
//     waitForMenuChange drains that feed inside the Bubble Tea loop and the
//     handler for menuChangedMsg re-arms it.
package ui
