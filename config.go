package main

import "os"

func getDBConnectionString() string {
	return os.Getenv("DB_CONNECTION_STRING")
}

func getGeminiApiKey() string {
	return os.Getenv("GEMINI_API_KEY")
}

func getClassifierUrl() string {
	return os.Getenv("CLASSIFIER_URL")
}

func getClassifierAuthToken() string {
	return os.Getenv("CLASSIFIER_AUTH_TOKEN")
}

func getServerAddress() string {
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}
