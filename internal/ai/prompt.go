package ai

import "fmt"

func summaryPrompt(title, author string) string {
	return fmt.Sprintf("%s by %s. Share summary of this book in 3-4 lines.", title, author)
}

func chatPrompt(title, author, message string) string {
	return fmt.Sprintf(
		"You are a helpful assistant for a book management system.\n"+
			"Book: %s\n"+
			"Author: %s\n\n"+
			"User message: %s\n\n"+
			"Answer clearly and concisely.",
		title, author, message,
	)
}
