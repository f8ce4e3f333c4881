// check-ai sends one alert text through the OpenAI translator and prints the
// derived SQL. A quick smoke check that the key and prompt work.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/Surveillance-IA-distributed/surveillance-backend/internal/alerts"
)

func main() {
	var alertText = flag.String("alert", "a person appears close to the camera", "Alert text to translate")
	flag.Parse()

	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		log.Fatal("OPENAI_API_KEY is not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	translator := alerts.NewTranslator(apiKey)
	sql, err := translator.Translate(ctx, *alertText)
	if err != nil {
		log.Fatal("Translation failed: ", err)
	}

	fmt.Printf("Alert: %s\n", *alertText)
	fmt.Printf("SQL:   %s\n", sql)
}
