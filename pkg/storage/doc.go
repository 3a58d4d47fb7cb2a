// Package storage provides the file store katasync writes solutions through.
//
// The storage package handles:
//   - Checking whether a level directory or solution file already exists
//   - Creating level directories one at a time (parents are never created)
//   - Writing files atomically through a temporary file and rename
//
// Manager is the filesystem implementation. MemStore keeps everything in
// memory and records every call, which is what the materializer tests use.
//
// Usage:
//
//	store := storage.NewManager(0755, 0644)
//
//	exists, err := store.Exists("katas/6kyu/Two Sum_v1.py")
//	if err != nil {
//	    return err
//	}
//	if !exists {
//	    err = store.WriteFile("katas/6kyu/Two Sum_v1.py", "def two_sum(): ...\n")
//	}
package storage
