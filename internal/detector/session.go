package detector

import (
	"fmt"

	ort "github.com/yalue/onnxruntime_go"

	"github.com/your-org/goocr/internal/ocrerr"
	"github.com/your-org/goocr/internal/tensor"
)

// Session wraps the CRAFT ONNX graph. Detector inputs vary in spatial shape
// call-to-call (the resize target depends on the source image), so a
// DynamicAdvancedSession is used rather than a fixed-shape AdvancedSession —
// input and output tensors are allocated per Run rather than preallocated.
type Session struct {
	session     *ort.DynamicAdvancedSession
	inputNames  []string
	outputNames []string
}

// NewSession loads the detector ONNX graph. inputName/outputNames must match
// the graph's declared I/O; when the model exposes combined text+link
// output under one name, outputNames has length 1, otherwise 2 ("text",
// "link").
func NewSession(modelPath string, inputName string, outputNames []string, opts *ort.SessionOptions) (*Session, error) {
	session, err := ort.NewDynamicAdvancedSession(modelPath, []string{inputName}, outputNames, opts)
	if err != nil {
		return nil, fmt.Errorf("%w: load detector model %s: %v", ocrerr.ErrModelLoad, modelPath, err)
	}
	return &Session{session: session, inputNames: []string{inputName}, outputNames: outputNames}, nil
}

// Run executes the detector on a preprocessed [1,3,H,W] CHW tensor and
// returns the normalized (text, link) heatmap pair.
func (s *Session) Run(chw []float32, width, height int) (text, link Heatmap, err error) {
	inputTensor, err := ort.NewTensor(ort.NewShape(1, 3, int64(height), int64(width)), chw)
	if err != nil {
		return Heatmap{}, Heatmap{}, fmt.Errorf("%w: build detector input tensor: %v", ocrerr.ErrInference, err)
	}
	defer inputTensor.Destroy()

	outputs, err := s.session.Run([]ort.Value{inputTensor}, nil)
	if err != nil {
		return Heatmap{}, Heatmap{}, fmt.Errorf("%w: run detector session: %v", ocrerr.ErrInference, err)
	}
	defer func() {
		for _, o := range outputs {
			o.Destroy()
		}
	}()

	named := make(map[string]*tensor.Tensor, len(outputs))
	for i, name := range s.outputNames {
		if i >= len(outputs) {
			break
		}
		ft, ok := outputs[i].(*ort.Tensor[float32])
		if !ok {
			return Heatmap{}, Heatmap{}, fmt.Errorf("%w: detector output %q is not f32", ocrerr.ErrShapeMismatch, name)
		}
		shape := make([]int, len(ft.GetShape()))
		for j, d := range ft.GetShape() {
			shape[j] = int(d)
		}
		tt, err := tensor.NewF32(shape, ft.GetData())
		if err != nil {
			return Heatmap{}, Heatmap{}, fmt.Errorf("%w: %v", ocrerr.ErrShapeMismatch, err)
		}
		named[name] = tt
	}

	return NormalizeOutputs(named)
}

// Close releases the underlying ONNX session.
func (s *Session) Close() {
	if s.session != nil {
		s.session.Destroy()
	}
}
