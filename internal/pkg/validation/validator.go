package validation

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"

	apperror "gocadastro/internal/errors"
)

// Validator aplica as tags `validate` das entidades e traduz cada falha
// para a mensagem do campo correspondente.
type Validator struct {
	v        *validator.Validate
	messages map[string]string
}

// New cria um Validator. messages mapeia "Struct.Campo" para a mensagem de erro;
// campos sem mensagem cadastrada recebem uma mensagem genérica.
func New(messages map[string]string) *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())
	// notblank: rejeita strings vazias ou só com espaços.
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		panic(fmt.Sprintf("validation: falha ao registrar notblank: %v", err))
	}
	return &Validator{v: v, messages: messages}
}

// Struct valida s e devolve um apperror.ValidationError com uma mensagem por campo inválido.
func (val *Validator) Struct(s interface{}) error {
	err := val.v.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperror.NewInternalError("Falha ao validar dados.", err)
	}

	msgs := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if msg, ok := val.messages[fe.StructNamespace()]; ok {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, fmt.Sprintf("Campo %s inválido (%s).", fe.Field(), fe.Tag()))
	}
	return apperror.NewFieldValidationError("Dados inválidos.", msgs)
}
