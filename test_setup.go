package main

import (
	"context"
	"fmt"
	"log"
	"os"

	firebase "firebase.google.com/go/v4"
	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/joho/godotenv"
	"google.golang.org/api/option"
)

func main() {
	// Load .env
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	ctx := context.Background()

	// Test Firebase (Firestore + Auth)
	fmt.Println("Testing Firebase connection...")
	credsPath := os.Getenv("FIREBASE_CREDENTIALS_FILE")
	opt := option.WithCredentialsFile(credsPath)

	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		log.Fatal("Firebase initialization failed:", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		log.Fatal("Firestore client failed:", err)
	}
	defer fs.Close()
	fmt.Println("✅ Firestore connected successfully!")

	_, err = app.Auth(ctx)
	if err != nil {
		log.Fatal("Firebase Auth client failed:", err)
	}
	fmt.Println("✅ Firebase Auth connected successfully!")

	// Test Cloudinary
	fmt.Println("\nTesting Cloudinary connection...")
	cloudName := os.Getenv("CLOUDINARY_CLOUD_NAME")
	apiKey := os.Getenv("CLOUDINARY_API_KEY")
	apiSecret := os.Getenv("CLOUDINARY_API_SECRET")

	if cloudName == "" || apiKey == "" || apiSecret == "" {
		log.Fatal("Cloudinary credentials missing in .env")
	}

	cldURL := fmt.Sprintf("cloudinary://%s:%s@%s", apiKey, apiSecret, cloudName)
	cld, err := cloudinary.NewFromURL(cldURL)
	if err != nil {
		log.Fatal("Cloudinary initialization failed:", err)
	}

	if cld.Config.Cloud.CloudName != cloudName {
		log.Fatal("Cloudinary config mismatch")
	}
	fmt.Println("✅ Cloudinary connected successfully!")

	fmt.Println("\n🎉 All systems ready!")
}
