package chromedp

import (
	"context"

	"github.com/harborline/chromedp/cdproto/runtime"
)

// EvalOption adjusts a runtime.EvaluateParams before it runs.
type EvalOption func(*runtime.EvaluateParams) *runtime.EvaluateParams

// Evaluate evaluates a JavaScript expression and unmarshals its result
// into res, following the same convention as CallFunctionOn: res may be
// **runtime.RemoteObject for the raw object, *[]byte for the raw JSON
// value, or any JSON-unmarshalable pointer.
func Evaluate(expression string, res interface{}, opts ...EvalOption) ActionFunc {
	return func(ctx context.Context) error {
		p := runtime.Evaluate(expression).WithAwaitPromise(true)

		switch res.(type) {
		case nil, **runtime.RemoteObject:
		default:
			p = p.WithReturnByValue(true)
		}
		for _, o := range opts {
			p = o(p)
		}

		v, exp, err := p.Do(ctx)
		if err != nil {
			return err
		}
		if exp != nil {
			return exp
		}
		return parseRemoteObject(v, res)
	}
}

// WithExecutionContextID evaluates in a specific JavaScript execution
// context rather than the page's default.
func WithExecutionContextID(id runtime.ExecutionContextID) EvalOption {
	return func(p *runtime.EvaluateParams) *runtime.EvaluateParams {
		return p.WithExecutionContextID(id)
	}
}
