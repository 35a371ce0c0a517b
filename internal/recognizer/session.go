package recognizer

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/your-org/goocr/internal/ocrerr"
)

// Session wraps the CRNN ONNX graph. Like the detector, the recognizer's
// batch width varies call-to-call, so inputs are built fresh on every Run.
type Session struct {
	session        *ort.DynamicAdvancedSession
	inputName      string
	secondaryInput string // optional zero i64 [1,1] placeholder, empty if unused
	outputName     string
	declaredHeight int
	declaredWidth  int
}

// NewSession loads the recognizer ONNX graph and records its declared input
// shape (spec Open Question 2): height/width are read from the graph itself
// via ort.GetInputOutputInfo, not assumed from Options defaults.
func NewSession(modelPath, inputName, secondaryInput, outputName string, opts *ort.SessionOptions) (*Session, error) {
	inputs := []string{inputName}
	if secondaryInput != "" {
		inputs = append(inputs, secondaryInput)
	}
	session, err := ort.NewDynamicAdvancedSession(modelPath, inputs, []string{outputName}, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: load recognizer model %s: %v", ocrerr.ErrModelLoad, modelPath, err)
	}

	declaredHeight, declaredWidth, err := declaredInputShape(modelPath, inputName)
	if err != nil {
		session.Destroy()
		return nil, err
	}

	return &Session{
		session:        session,
		inputName:      inputName,
		secondaryInput: secondaryInput,
		outputName:     outputName,
		declaredHeight: declaredHeight,
		declaredWidth:  declaredWidth,
	}, nil
}

// declaredInputShape reads the graph's own declared [..., H, W] dims for
// inputName. A dynamic width (ONNX reports it as -1) is returned as 0,
// meaning "no fixed constraint" — the recognizer's batch width already
// varies crop to crop (spec §4.F). Height is expected fixed; a non-positive
// declared height is a malformed model, not a dynamic dimension.
func declaredInputShape(modelPath, inputName string) (height, width int, err error) {
	inputs, _, err := ort.GetInputOutputInfo(modelPath)
	if err != nil {
		return 0, 0, fmt.Errorf("%w: read recognizer input shape %s: %v", ocrerr.ErrModelLoad, modelPath, err)
	}
	for _, in := range inputs {
		if in.Name != inputName {
			continue
		}
		dims := in.Dimensions
		if len(dims) < 2 {
			return 0, 0, fmt.Errorf("%w: recognizer input %q has unexpected rank %d", ocrerr.ErrShapeMismatch, inputName, len(dims))
		}
		h := int(dims[len(dims)-2])
		if h <= 0 {
			return 0, 0, fmt.Errorf("%w: recognizer input %q declares non-positive height %d", ocrerr.ErrShapeMismatch, inputName, h)
		}
		w := int(dims[len(dims)-1])
		if w < 0 {
			w = 0
		}
		return h, w, nil
	}
	return 0, 0, fmt.Errorf("%w: recognizer input %q not found in graph %s", ocrerr.ErrShapeMismatch, inputName, modelPath)
}

// DeclaredHeight is the recognizer's authoritative input height, read from
// the model graph at load time.
func (s *Session) DeclaredHeight() int { return s.declaredHeight }

// Run executes the recognizer on a [1,1,H,W] CHW float plane, feeding the
// optional secondary zero i64 [1,1] tensor when the model declares one.
// Returns the flattened [steps, classes] logits plus the decoded dimensions.
func (s *Session) Run(data []float32, height, width int) (logits []float32, steps, classes int, err error) {
	inputTensor, err := ort.NewTensor(ort.NewShape(1, 1, int64(height), int64(width)), data)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: build recognizer input tensor: %v", ocrerr.ErrInference, err)
	}
	defer inputTensor.Destroy()

	inputValues := []ort.Value{inputTensor}
	if s.secondaryInput != "" {
		secondary, serr := ort.NewTensor(ort.NewShape(1, 1), []int64{0})
		if serr != nil {
			return nil, 0, 0, fmt.Errorf("%w: build recognizer secondary tensor: %v", ocrerr.ErrInference, serr)
		}
		defer secondary.Destroy()
		inputValues = append(inputValues, secondary)
	}

	outputs, err := s.session.Run(inputValues, nil)
	if err != nil {
		return nil, 0, 0, fmt.Errorf("%w: run recognizer session: %v", ocrerr.ErrInference, err)
	}
	defer func() {
		for _, o := range outputs {
			o.Destroy()
		}
	}()
	if len(outputs) == 0 {
		return nil, 0, 0, fmt.Errorf("%w: recognizer produced no output tensors", ocrerr.ErrShapeMismatch)
	}

	ft, ok := outputs[0].(*ort.Tensor[float32])
	if !ok {
		return nil, 0, 0, fmt.Errorf("%w: recognizer output is not f32", ocrerr.ErrShapeMismatch)
	}
	shape := ft.GetShape()
	if len(shape) < 2 {
		return nil, 0, 0, fmt.Errorf("%w: recognizer output shape %v has fewer than 2 dims", ocrerr.ErrShapeMismatch, shape)
	}
	classes = int(shape[len(shape)-1])
	steps = int(shape[len(shape)-2])

	out := make([]float32, steps*classes)
	copy(out, ft.GetData())
	return out, steps, classes, nil
}

// Close releases the underlying ONNX session.
func (s *Session) Close() {
	if s.session != nil {
		s.session.Destroy()
	}
}
