// Command saslecho drives one SASL mechanism's client side against
// server messages read line-by-line from stdin, printing the resulting
// client messages to stdout and diagnostics to stderr. It has no network
// half; it exists to let someone poke at a mechanism from a shell
// without writing a throwaway Go program, the way go-imap's
// cmd/imapmemserver wires its library types into a runnable main.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/rhymu8354/sasl"
	"github.com/rhymu8354/sasl/internal/scramhash"
)

func main() {
	mechName := flag.String("mech", "SCRAM-SHA-256", "PLAIN, LOGIN, SCRAM-SHA-1, SCRAM-SHA-256, or SCRAM-SHA-512")
	authn := flag.String("authn", "", "authentication identity (username)")
	authz := flag.String("authz", "", "authorization identity (leave empty to act as authn)")
	secret := flag.String("secret", "", "password or other shared secret")
	flag.Parse()

	mech, err := newMechanism(*mechName)
	if err != nil {
		log.Fatal(err)
	}

	unsubscribe := mech.SubscribeToDiagnostics(func(level int, message string) {
		fmt.Fprintln(os.Stderr, message)
	}, 0)
	defer unsubscribe()

	mech.SetCredentials(*secret, *authn, *authz)

	if ir := mech.GetInitialResponse(); ir != "" {
		fmt.Println(ir)
	}

	scanner := bufio.NewScanner(os.Stdin)
	for scanner.Scan() {
		response := mech.Proceed(scanner.Text())
		if response != "" {
			fmt.Println(response)
		}
		if mech.Faulted() {
			log.Fatal("mechanism faulted: server violated the protocol")
		}
	}

	if mech.Succeeded() {
		fmt.Fprintln(os.Stderr, "authentication succeeded")
	}
}

func newMechanism(name string) (sasl.Mechanism, error) {
	switch name {
	case "PLAIN":
		return sasl.NewPlain(), nil
	case "LOGIN":
		return sasl.NewLogin(), nil
	case "SCRAM-SHA-1":
		return sasl.NewScram(scramhash.SHA1), nil
	case "SCRAM-SHA-256":
		return sasl.NewScram(scramhash.SHA256), nil
	case "SCRAM-SHA-512":
		return sasl.NewScram(scramhash.SHA512), nil
	default:
		return nil, fmt.Errorf("saslecho: unknown mechanism %q", name)
	}
}
