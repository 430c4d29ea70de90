// Package picker runs the native "open file" dialog on a dedicated worker so the
// UI thread never blocks. The UI enqueues PickRequests and polls FileSelections
// once per frame; the worker services requests one at a time, so at most one
// dialog is ever open.
package picker
