package sentience

import (
	"fmt"
	"math"
)

// Embedder generates a vector embedding for a piece of text.  A real
// embedding service is attached by setting Runtime.Embedder; without one the
// embed builtin returns placeholder data.
type Embedder interface {
	Embed(text, model string) (*SVal, error)
}

// ModelClient invokes a named AI model with already-evaluated arguments.
// Attached via Runtime.Model; without one the ai builtin returns a
// placeholder response.
type ModelClient interface {
	Call(model string, args []*SVal) (*SVal, error)
}

// builtinEmbed produces an embedding vector for its string argument.  An
// optional second string argument names the model (default "default").
func builtinEmbed(rt *Runtime, args []*SVal) (*SVal, error) {
	if len(args) == 0 {
		return nil, Errorf(ErrnoArity, "embed expects at least one argument")
	}
	if !args[0].IsString() {
		return nil, Errorf(ErrnoArity, "first argument to embed must be a string (got %s)", args[0].Type)
	}
	model := "default"
	if len(args) > 1 && args[1].IsString() {
		model = args[1].Str
	}
	fmt.Fprintf(rt.Stdout, "Embedding text with model: %s\n", model)
	if rt.Embedder != nil {
		return rt.Embedder.Embed(args[0].Str, model)
	}
	// Placeholder until an embedding backend is configured.
	cells := make([]*SVal, 10)
	for i := range cells {
		cells[i] = Number(float64(i) / 10)
	}
	return List(cells...), nil
}

// builtinAICall invokes the AI model named by its string argument, passing
// any remaining arguments through to the backend.
func builtinAICall(rt *Runtime, args []*SVal) (*SVal, error) {
	if len(args) == 0 {
		return nil, Errorf(ErrnoArity, "ai expects at least one argument")
	}
	if !args[0].IsString() {
		return nil, Errorf(ErrnoArity, "first argument to ai must be a string (got %s)", args[0].Type)
	}
	model := args[0].Str
	fmt.Fprintf(rt.Stdout, "Calling AI model: %s\n", model)
	if rt.Model != nil {
		return rt.Model.Call(model, args[1:])
	}
	// Placeholder until a model backend is configured.
	return String("AI model response"), nil
}

// CosineSimilarity computes the cosine similarity of two embedding vectors,
// given as lists of numbers of equal length.
func CosineSimilarity(a, b *SVal) (*SVal, error) {
	va, err := numericVector(a)
	if err != nil {
		return nil, err
	}
	vb, err := numericVector(b)
	if err != nil {
		return nil, err
	}
	if len(va) != len(vb) {
		return nil, Errorf(ErrnoArity, "vectors have different lengths (%d and %d)", len(va), len(vb))
	}
	var dot, na, nb float64
	for i := range va {
		dot += va[i] * vb[i]
		na += va[i] * va[i]
		nb += vb[i] * vb[i]
	}
	if na == 0 || nb == 0 {
		return nil, Errorf(ErrnoDivZero, "cannot compare zero-magnitude vectors")
	}
	return Number(dot / (math.Sqrt(na) * math.Sqrt(nb))), nil
}

func numericVector(v *SVal) ([]float64, error) {
	if !v.IsList() {
		return nil, Errorf(ErrnoArity, "argument must be a list of numbers (got %s)", v.Type)
	}
	xs := make([]float64, len(v.Cells))
	for i, c := range v.Cells {
		if !c.IsNumber() {
			return nil, Errorf(ErrnoArity, "argument must be a list of numbers (element %d is %s)", i, c.Type)
		}
		xs[i] = c.Num
	}
	return xs, nil
}
