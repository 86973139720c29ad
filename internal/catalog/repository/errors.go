package repository

import "errors"

var (
	ErrFailedToBegin    = errors.New("failed to begin transaction")
	ErrFailedToCommit   = errors.New("failed to commit transaction")
	ErrFailedToInsert   = errors.New("failed to insert record")
	ErrFailedToGet      = errors.New("failed to get record")
	ErrFailedToList     = errors.New("failed to list records")
	ErrFailedToUpdate   = errors.New("failed to update record")
	ErrFailedToUpsert   = errors.New("failed to upsert record")
	ErrFailedToDelete   = errors.New("failed to delete record")
	ErrFailedToRestore  = errors.New("failed to restore record")
	ErrFailedToActivate = errors.New("failed to change record activation")
)
