package syncing

import (
	"errors"
)

var (
	ErrStoreNotFound  = errors.New("loja não encontrada")
	ErrStoreNotOwned  = errors.New("loja pertence a outro usuário")
	ErrSyncInProgress = errors.New("sincronização já em andamento para esta loja")
)
