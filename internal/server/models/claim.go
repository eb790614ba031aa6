package models

// Claim — типизированное утверждение об идентичности пользователя,
// которое читает выдача токенов.
type Claim struct {
	Type  string
	Value string
}
