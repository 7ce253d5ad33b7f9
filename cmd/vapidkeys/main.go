package main

import (
	"fmt"
	"log"

	"github.com/dmitrymomot/pushfan/pkg/vapid"
)

func main() {
	privateKey, publicKey, err := vapid.GenerateKeys()
	if err != nil {
		log.Fatalf("Failed to generate VAPID keys: %v", err)
	}

	fmt.Printf("Generated VAPID key pair (set as environment variables):\n---\n%s=%s\n%s=%s\n---\n",
		vapid.EnvPrivateKey, privateKey,
		vapid.EnvPublicKey, publicKey,
	)
	fmt.Printf("Also set %s to a contact URI, e.g. mailto:ops@example.com\n", vapid.EnvSubject)
}
