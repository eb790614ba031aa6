// Package policy решает, пускать ли запрос к /api/v1, по правилам на Rego (OPA в процессе).
package policy

import (
	"context"
	"errors"
	"fmt"

	"github.com/open-policy-agent/opa/v1/ast"
	"github.com/open-policy-agent/opa/v1/rego"
)

const query = "data.fleet.authz.allow"

// DefaultRego — правила по умолчанию: управляющие роли имеют доступ ко всему /api/v1,
// любой аутентифицированный пользователь может прочитать свою учётную запись.
const DefaultRego = `package fleet.authz

default allow := false

managers := {"Administrator", "FleetManager", "HrManager"}

allow if {
	startswith(input.path, "/api/v1/")
	managers[input.role]
}

allow if {
	input.method == "GET"
	input.subject != ""
	input.path == concat("/", ["", "api", "v1", "users", input.subject])
}
`

// Input — то, что известно о запросе после проверки токена.
type Input struct {
	Method  string `json:"method"`
	Path    string `json:"path"`
	Role    string `json:"role"`
	Subject string `json:"subject"`
}

// Engine — скомпилированные правила, готовые к вычислению.
type Engine struct {
	prepared rego.PreparedEvalQuery
}

// New компилирует module (пусто — DefaultRego). Правила должны определять data.fleet.authz.allow.
func New(ctx context.Context, module string) (*Engine, error) {
	if module == "" {
		module = DefaultRego
	}

	compiler, err := ast.CompileModules(map[string]string{"authz.rego": module})
	if err != nil {
		return nil, fmt.Errorf("compile policy: %w", err)
	}

	prepared, err := rego.New(
		rego.Query(query),
		rego.Compiler(compiler),
	).PrepareForEval(ctx)
	if err != nil {
		return nil, fmt.Errorf("prepare policy: %w", err)
	}
	return &Engine{prepared: prepared}, nil
}

// Allow вычисляет правило для одного запроса. Неопределённый результат — запрет.
func (e *Engine) Allow(ctx context.Context, in Input) (bool, error) {
	rs, err := e.prepared.Eval(ctx, rego.EvalInput(map[string]any{
		"method":  in.Method,
		"path":    in.Path,
		"role":    in.Role,
		"subject": in.Subject,
	}))
	if err != nil {
		return false, fmt.Errorf("eval policy: %w", err)
	}
	if len(rs) == 0 || len(rs[0].Expressions) == 0 {
		return false, nil
	}

	allowed, ok := rs[0].Expressions[0].Value.(bool)
	if !ok {
		return false, errors.New("policy allow is not a boolean")
	}
	return allowed, nil
}
