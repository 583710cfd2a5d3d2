package chromedp

import (
	"context"
	"encoding/json"

	"github.com/harborline/chromedp/cdproto/runtime"
)

// CallOption adjusts a runtime.CallFunctionOnParams before it runs.
type CallOption func(*runtime.CallFunctionOnParams) *runtime.CallFunctionOnParams

// CallFunctionOn calls a JavaScript function and unmarshals its result
// into res, same convention as Evaluate: res may be **runtime.RemoteObject
// to get the raw object, or any JSON-unmarshalable pointer.
//
// Do not call WithReturnByValue or WithArguments on the params passed
// through opt -- ReturnByValue is derived from res, and arguments belong
// in args instead.
func CallFunctionOn(functionDeclaration string, res interface{}, opt CallOption, args ...interface{}) ActionFunc {
	return func(ctx context.Context) error {
		p := runtime.CallFunctionOn(functionDeclaration).WithSilent(true)

		switch res.(type) {
		case nil, **runtime.RemoteObject:
		default:
			p = p.WithReturnByValue(true)
		}

		if opt != nil {
			p = opt(p)
		}

		if len(args) > 0 {
			ea := &errAppender{args: make([]*runtime.CallArgument, 0, len(args))}
			for _, arg := range args {
				ea.append(arg)
			}
			if ea.err != nil {
				return ea.err
			}
			p = p.WithArguments(ea.args)
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

// errAppender accumulates JSON-marshaled call arguments, recording the
// first marshal error rather than aborting partway.
type errAppender struct {
	args []*runtime.CallArgument
	err  error
}

func (ea *errAppender) append(v interface{}) {
	if ea.err != nil {
		return
	}
	var b []byte
	if b, ea.err = json.Marshal(v); ea.err != nil {
		return
	}
	ea.args = append(ea.args, &runtime.CallArgument{Value: b})
}

// parseRemoteObject unmarshals a RemoteObject's value into res, the same
// convention Evaluate and CallFunctionOn share.
func parseRemoteObject(v *runtime.RemoteObject, res interface{}) error {
	switch x := res.(type) {
	case nil:
		return nil
	case **runtime.RemoteObject:
		*x = v
		return nil
	case *[]byte:
		*x = v.Value
		return nil
	default:
		if len(v.Value) == 0 {
			return nil
		}
		return json.Unmarshal(v.Value, res)
	}
}
