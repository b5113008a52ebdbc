// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package logger_test

import (
	"io"
	"testing"

	"github.com/H0llyW00dzZ/certlist2pem/src/logger"
)

func BenchmarkJSONLogger_Printf(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, false)

	b.ReportAllocs()

	for i := 0; b.Loop(); i++ {
		log.Printf("decoded certificate %d", i)
	}
}

func BenchmarkJSONLogger_PrintfConcurrent(b *testing.B) {
	log := logger.NewJSONLogger(io.Discard, false)

	b.ReportAllocs()

	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			log.Printf("decoded certificate %d", i)
			i++
		}
	})
}
