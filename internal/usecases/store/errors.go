package store

import (
	"errors"
)

var (
	ErrStoreNotFound    = errors.New("loja não encontrada")
	ErrStoreNotOwned    = errors.New("loja pertence a outro usuário")
	ErrConnectionFailed = errors.New("não foi possível conectar na loja com as credenciais informadas")
	ErrInvalidRequest   = errors.New("dados da loja inválidos")
)
