// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	verpkg "github.com/H0llyW00dzZ/certlist2pem/src/version"
)

func TestVersionInit(t *testing.T) {
	assert.NotEmpty(t, version)
	if version != verpkg.Version {
		t.Logf("version set by ldflags: %s (package version: %s)", version, verpkg.Version)
	}
}
