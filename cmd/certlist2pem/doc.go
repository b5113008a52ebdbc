// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// certlist2pem is a command-line tool that turns certificate lists written as
// decimal byte lists into readable PEM reports.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/certlist2pem/cmd/certlist2pem@latest
//
// # Usage
//
//	certlist2pem [FLAGS] INPUT_FILE
//
// The input file holds one group of byte lists, each byte list being the DER
// encoding of one certificate:
//
//	[[48,130,4,87,...],[48,130,5,10,...]]
//
// Whitespace anywhere in the file is ignored. Use "-" to read standard input.
//
// # Flags
//
//	-o, --output   Destination file (default: stdout)
//	-F, --format   pem, json, yaml or table (default: pem)
//	    --verify   Re-parse emitted PEM bodies before writing
//	    --strict   Reject trailing data after the certificate list
//	-c, --config   JSON or YAML config file (env CERTLIST2PEM_CONFIG_FILE)
//
// # Examples
//
// Print issuer, subject and PEM body of every certificate:
//
//	certlist2pem certs.txt
//
// Summarize a list as a markdown table:
//
//	certlist2pem -F table certs.txt
//
// Write a verified bundle and inspect it with OpenSSL:
//
//	certlist2pem --verify -o bundle.txt certs.txt
//	openssl crl2pkcs7 -nocrl -certfile bundle.txt | openssl pkcs7 -print_certs -noout
package main
