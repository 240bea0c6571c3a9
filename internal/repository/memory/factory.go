package memory

import (
	"context"
	"fmt"

	"notemark-be/internal/repository/contract"
	"notemark-be/internal/repository/unitofwork"
)

// Factory hands out units of work backed by one shared store. There is no
// real transaction isolation; Begin and Commit just track pairing so misuse
// surfaces the same way it would with the GORM implementation.
type Factory struct {
	store *Store
}

func NewFactory(store *Store) *Factory {
	return &Factory{store: store}
}

func (f *Factory) NewUnitOfWork(ctx context.Context) unitofwork.UnitOfWork {
	return &unitOfWork{store: f.store}
}

type unitOfWork struct {
	store *Store
	began bool
}

func (u *unitOfWork) Begin(ctx context.Context) error {
	if u.began {
		return fmt.Errorf("transaction already started")
	}
	u.began = true
	return nil
}

func (u *unitOfWork) Commit() error {
	if !u.began {
		return fmt.Errorf("no transaction to commit")
	}
	u.began = false
	return nil
}

func (u *unitOfWork) Rollback() error {
	if !u.began {
		return fmt.Errorf("no transaction to rollback")
	}
	u.began = false
	return nil
}

func (u *unitOfWork) UserRepository() contract.UserRepository {
	return &userRepository{store: u.store}
}

func (u *unitOfWork) FolderRepository() contract.FolderRepository {
	return &folderRepository{store: u.store}
}

func (u *unitOfWork) TagRepository() contract.TagRepository {
	return &tagRepository{store: u.store}
}

func (u *unitOfWork) NoteRepository() contract.NoteRepository {
	return &noteRepository{store: u.store}
}

func (u *unitOfWork) RevisionRepository() contract.RevisionRepository {
	return &revisionRepository{store: u.store}
}

func (u *unitOfWork) IssueRepository() contract.IssueRepository {
	return &issueRepository{store: u.store}
}
