// Package command hosts the write-side handlers of the local store. Each
// handler validates its input, delegates to a repository, and emits the
// matching hook after the mutation commits.
package command
