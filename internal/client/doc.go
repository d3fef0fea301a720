// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client assembles the sync engine from configuration.
//
// It wires the local store, snapshot gateway, remote blob store and sync
// services into one App, and runs the serve mode: the control API together
// with the periodic merge job.
package client
