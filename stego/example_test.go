package stego_test

import (
	"context"
	"fmt"

	"github.com/hasbyte1/go-stego/engine"
	"github.com/hasbyte1/go-stego/pixel"
	"github.com/hasbyte1/go-stego/stego"
)

func Example_basicUsage() {
	ctx := context.Background()
	s := stego.New()

	buf := pixel.NewFilled(100, 100, [4]uint8{200, 180, 160, 255})
	if _, err := s.Encode(ctx, buf, "Hello", "Tr0ub4dor&3", engine.AlgorithmLSB); err != nil {
		fmt.Println("encode:", err)
		return
	}

	res, err := s.Decode(ctx, buf, "Tr0ub4dor&3")
	if err != nil {
		fmt.Println("decode:", err)
		return
	}
	fmt.Println(res.Message, res.Algorithm)

	out := s.Reveal(ctx, buf, "wrong")
	fmt.Println(out.Success)
	// Output:
	// Hello lsb
	// false
}

func ExampleStego_MaxMessageLength() {
	s := stego.New()
	buf := pixel.NewFilled(64, 64, [4]uint8{0, 0, 0, 255})

	n, _ := s.MaxMessageLength(buf, engine.AlgorithmLSB)
	fmt.Println(n > 0, n < stego.EstimateCapacity(64, 64, engine.AlgorithmLSB))
	// Output:
	// true true
}

func ExampleFailureReason() {
	s := stego.New()
	_, err := s.Decode(context.Background(), pixel.New(10, 10), "secret")
	fmt.Println(stego.FailureReason(err))
	// Output:
	// No hidden message found in this image
}
