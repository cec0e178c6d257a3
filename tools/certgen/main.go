// Package main generates a development Certificate Authority (CA), a server
// certificate for the fixture backend and a client certificate for the CLI,
// writing them to files under the output directory.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/gramudyogai/gramudyog-go/internal/certgen"
)

func main() {
	dir := flag.String("out", "certs", "output directory")
	hosts := flag.String("hosts", "localhost,127.0.0.1", "comma-separated server host names and IPs")
	client := flag.String("client", "gramudyog-cli", "client certificate common name")
	flag.Parse()

	if err := generate(*dir, strings.Split(*hosts, ","), *client); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	fmt.Printf("Certificates generated into ./%s\n", *dir)
}

// generate writes ca, server and client key pairs into dir.
func generate(dir string, hosts []string, clientCN string) error {
	ca, caPEM, err := certgen.NewCA("GramUdyog Dev CA")
	if err != nil {
		return err
	}
	if err := caPEM.Write(dir, "ca"); err != nil {
		return err
	}

	var names []string
	for _, h := range hosts {
		if h = strings.TrimSpace(h); h != "" {
			names = append(names, h)
		}
	}
	if len(names) == 0 {
		return fmt.Errorf("no server hosts given")
	}
	server, err := ca.Issue(names[0], names, certgen.ServerAuth)
	if err != nil {
		return fmt.Errorf("server certificate: %w", err)
	}
	if err := server.Write(dir, "server"); err != nil {
		return err
	}

	client, err := ca.Issue(clientCN, nil, certgen.ClientAuth)
	if err != nil {
		return fmt.Errorf("client certificate: %w", err)
	}
	return client.Write(dir, "client")
}
