// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package digest implements the one-way password digest stored in the first
// 32 bytes of every note container, together with its canonical hex form.
//
// The digest is a plain SHA-256 over the UTF-8 bytes of the text. Changing
// the algorithm or its size changes the container wire format.
package digest
