// SPDX-License-Identifier: Unlicense OR MIT

//go:build glcontracts

package glbuf

const contractsEnabled = true
