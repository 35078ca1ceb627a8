package hubbub_test

import (
	"context"
	"fmt"

	"github.com/dshills/hubbub"
	"github.com/dshills/hubbub/topic"
)

func ExampleHub() {
	hub := hubbub.NewHub()
	defer hub.Close()

	unsub, _ := hub.Subscribe(hubbub.HandlerFunc(func(_ context.Context, v any) error {
		fmt.Println("received:", v)
		return nil
	}))
	defer unsub()

	hub.Notify(context.Background(), 42)
	// Output: received: 42
}

func ExampleHub1() {
	hub := hubbub.NewHub1()
	defer hub.Close()

	unsub, _ := hub.Subscribe(topic.Topics("temperature"), hubbub.HandlerFunc(func(_ context.Context, v any) error {
		fmt.Println("temperature:", v)
		return nil
	}))
	defer unsub()

	hub.Notify(context.Background(), topic.Topics("temperature"), 21.5)
	hub.Notify(context.Background(), topic.Topics("humidity"), 40) // not delivered
	// Output: temperature: 21.5
}

func ExampleHub2() {
	hub := hubbub.NewHub2()
	defer hub.Close()

	// Matching requires intersection in both dimensions.
	unsub, _ := hub.Subscribe(
		topic.Topics("sensor-1", "sensor-2"),
		topic.Topics("warning", "error"),
		hubbub.HandlerFunc(func(_ context.Context, v any) error {
			fmt.Println("alert:", v)
			return nil
		}),
	)
	defer unsub()

	hub.Notify(context.Background(), topic.Topics("sensor-2"), topic.Topics("warning"), "overheat")
	hub.Notify(context.Background(), topic.Topics("sensor-2"), topic.Topics("info"), "ignored")
	// Output: alert: overheat
}

func ExampleStateHub() {
	hub := hubbub.NewStateHub("booting")
	defer hub.Close()

	hub.Notify(context.Background(), "ready")

	// A late subscriber can ask for the current state up front.
	unsub, _ := hub.Subscribe(hubbub.HandlerFunc(func(_ context.Context, v any) error {
		fmt.Println("status:", v)
		return nil
	}), hubbub.WithCurrentState())
	defer unsub()

	fmt.Println("state:", hub.State())
	// Output:
	// status: ready
	// state: ready
}

func ExampleReactiveHub() {
	counter := 1
	hub := hubbub.NewReactiveHub(func() any {
		counter++
		return counter
	})
	defer hub.Close()

	v, _ := hub.Notify(context.Background())
	fmt.Println("produced:", v)
	fmt.Println("state:", hub.State())
	// Output:
	// produced: 2
	// state: 2
}

func ExampleWithTopics() {
	_ = hubbub.WithTopics(1, func(h *hubbub.TopicHub) error {
		unsub, err := h.Subscribe([][]topic.Topic{topic.Topics("*")}, hubbub.HandlerFunc(func(_ context.Context, v any) error {
			fmt.Println("wildcard got:", v)
			return nil
		}))
		if err != nil {
			return err
		}
		defer unsub()

		return h.Notify(context.Background(), [][]topic.Topic{topic.Topics("anything")}, "hello")
	})
	// The hub is closed when the body returns.
	// Output: wildcard got: hello
}
