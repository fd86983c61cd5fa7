package bot

// User-visible texts. The failure notice is deliberately generic; real
// error detail only goes to the logs.
const (
	welcomeText = `🔥 Welcome to the ICIFIED Bot! 💎

Transform any photo into a luxurious masterpiece with:
• Diamond-encrusted watches ⌚💎
• Shiny diamond grillz 😁✨
• Maintains original style and lighting

Simply send me a photo and I'll ice it out for you!

Commands:
/help - Show this help message
/start - Start the bot

Just send a photo to get started! 📸`

	helpText = `🆘 ICIFIED Bot Help 💎

How to use:
1. Send me any photo
2. Wait for processing (30-60 seconds)
3. Receive your icified masterpiece!

Features:
• Adds luxury diamond watch to left wrist
• Adds diamond grillz to teeth
• Preserves original lighting and background
• Works with portraits, selfies, and character images

Tips for best results:
• Use clear, well-lit photos
• Face should be visible for grillz
• Arms/hands visible for watch placement
• Higher resolution = better results

Send a photo to try it out! 🔥`

	processingText = "🔥 Icifying your photo... This may take 30-60 seconds! 💎\n\n" +
		"Adding:\n• Diamond watch ⌚💎\n• Diamond grillz 😁✨"

	failureText = "❌ Sorry, something went wrong processing your image. Please try again!"

	instructionsText = "📸 Send me a photo to ice out!\n\n" +
		"I'll add diamond grillz and a luxury watch while maintaining " +
		"the original style and lighting. 💎🔥"

	successCaption = "🔥 Your photo has been ICIFIED! 💎✨\n\nShare your iced out masterpiece! 🎯"

	sendPhotoButtonLabel = "🔥 Send Photo to Ice Out! 📸"
	sendPhotoCallback    = "send_photo"
)
