package dispatch

import (
	"context"
	"errors"
	"testing"
	"time"
)

type handlerFunc func(ctx context.Context, value any) error

func (f handlerFunc) Handle(ctx context.Context, value any) error {
	return f(ctx, value)
}

func TestExecutor_Success(t *testing.T) {
	exec := NewExecutor()

	var got any
	result := exec.Execute(context.Background(), 42, handlerFunc(func(_ context.Context, v any) error {
		got = v
		return nil
	}))

	if !result.IsSuccess() {
		t.Errorf("result = %+v, want success", result)
	}
	if got != 42 {
		t.Errorf("handler received %v, want 42", got)
	}
	if result.Duration < 0 {
		t.Error("Duration should be non-negative")
	}
}

func TestExecutor_Error(t *testing.T) {
	exec := NewExecutor()
	wantErr := errors.New("handler failed")

	result := exec.Execute(context.Background(), nil, handlerFunc(func(context.Context, any) error {
		return wantErr
	}))

	if !result.IsError() {
		t.Errorf("result = %+v, want error", result)
	}
	if !errors.Is(result.Error, wantErr) {
		t.Errorf("Error = %v, want %v", result.Error, wantErr)
	}
	if result.Panicked {
		t.Error("Panicked should be false for plain errors")
	}
}

func TestExecutor_PanicRecovery(t *testing.T) {
	var handledValue any
	var handledPanic any
	exec := NewExecutor(WithExecutorPanicHandler(func(value any, panicValue any, stack []byte) {
		handledValue = value
		handledPanic = panicValue
		if len(stack) == 0 {
			t.Error("panic handler should receive a stack trace")
		}
	}))

	result := exec.Execute(context.Background(), "payload", handlerFunc(func(context.Context, any) error {
		panic("boom")
	}))

	if !result.IsPanic() {
		t.Errorf("result = %+v, want panic", result)
	}
	if result.PanicValue != "boom" {
		t.Errorf("PanicValue = %v, want boom", result.PanicValue)
	}
	if handledValue != "payload" || handledPanic != "boom" {
		t.Errorf("panic handler got (%v, %v), want (payload, boom)", handledValue, handledPanic)
	}
}

func TestExecutor_PanicHandlerPanics(t *testing.T) {
	// A panicking panic handler must not crash the process.
	exec := NewExecutor(WithExecutorPanicHandler(func(any, any, []byte) {
		panic("handler of panics panics")
	}))

	result := exec.Execute(context.Background(), nil, handlerFunc(func(context.Context, any) error {
		panic("original")
	}))

	if !result.IsPanic() || result.PanicValue != "original" {
		t.Errorf("result = %+v, want original panic preserved", result)
	}
}

func TestExecutor_ContextCancelled(t *testing.T) {
	exec := NewExecutor()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ran := false
	result := exec.Execute(ctx, nil, handlerFunc(func(context.Context, any) error {
		ran = true
		return nil
	}))

	if ran {
		t.Error("handler should not run with a cancelled context")
	}
	if !result.Skipped {
		t.Errorf("result = %+v, want skipped", result)
	}
	if !errors.Is(result.Error, context.Canceled) {
		t.Errorf("Error = %v, want context.Canceled", result.Error)
	}
}

func TestResult_Predicates(t *testing.T) {
	tests := []struct {
		name    string
		result  Result
		success bool
		isErr   bool
		isPanic bool
	}{
		{"success", Result{Success: true}, true, false, false},
		{"error", Result{Error: errors.New("x")}, false, true, false},
		{"panic", Result{Panicked: true, PanicValue: "x"}, false, false, true},
		{"panic with error set", Result{Panicked: true, Error: errors.New("x")}, false, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.result.IsSuccess(); got != tt.success {
				t.Errorf("IsSuccess() = %v, want %v", got, tt.success)
			}
			if got := tt.result.IsError(); got != tt.isErr {
				t.Errorf("IsError() = %v, want %v", got, tt.isErr)
			}
			if got := tt.result.IsPanic(); got != tt.isPanic {
				t.Errorf("IsPanic() = %v, want %v", got, tt.isPanic)
			}
		})
	}
}

func TestExecutor_Timing(t *testing.T) {
	exec := NewExecutor()

	result := exec.Execute(context.Background(), nil, handlerFunc(func(context.Context, any) error {
		time.Sleep(5 * time.Millisecond)
		return nil
	}))

	if result.Duration < 5*time.Millisecond {
		t.Errorf("Duration = %v, want >= 5ms", result.Duration)
	}
}
