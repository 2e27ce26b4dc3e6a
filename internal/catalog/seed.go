package catalog

var seedTemplates = []MissionTemplate{
	{
		Title:       "LinkedIn Connection Blitz",
		Description: "Connect with 10 potential clients or partners in your industry.",
		Category:    "networking",
		TimeMinutes: 30,
		Platform:    "linkedin",
		MissionText: "MISSION: Open LinkedIn. Search for 10 people in your target market. Send each a personalized connection request mentioning something specific about their profile. Log each connection attempt. Report back when complete.",
	},
	{
		Title:       "Content Creation Sprint",
		Description: "Write and publish a value-packed post about your expertise.",
		Category:    "business",
		TimeMinutes: 45,
		Platform:    "linkedin",
		MissionText: "MISSION: Write one LinkedIn post sharing a lesson from your military service that applies to business. Include a clear takeaway. Add a question at the end to drive engagement. Publish and engage with the first 5 comments.",
	},
	{
		Title:       "Cold Email Outreach",
		Description: "Send 5 personalized emails to potential clients or partners.",
		Category:    "business",
		TimeMinutes: 60,
		Platform:    "email",
		MissionText: "MISSION: Research 5 potential clients. Write personalized emails to each, mentioning a specific problem you can solve for them. Include a clear call-to-action. Send all 5 emails. Track responses in your CRM.",
	},
	{
		Title:       "Instagram Story Series",
		Description: "Create a 5-part story series showcasing your day or expertise.",
		Category:    "business",
		TimeMinutes: 30,
		Platform:    "instagram",
		MissionText: "MISSION: Plan a 5-story series showing behind-the-scenes of your business. Record each story with clear audio. Add text overlays for key points. Include a poll or question sticker in the last slide. Post all stories.",
	},
	{
		Title:       "Skill Development Block",
		Description: "Dedicate focused time to learning a new business skill.",
		Category:    "learning",
		TimeMinutes: 60,
		Platform:    "email",
		MissionText: "MISSION: Choose one skill critical to your business growth. Find a free resource (YouTube, article, course). Set a timer for 60 minutes. Take notes on 3 actionable insights. Apply one insight immediately.",
	},
	{
		Title:       "Morning Workout Protocol",
		Description: "Complete a structured morning fitness routine.",
		Category:    "fitness",
		TimeMinutes: 45,
		Platform:    "in_person",
		MissionText: "MISSION: Complete this circuit: 20 push-ups, 30 squats, 20 lunges, 1-minute plank. Rest 60 seconds. Repeat 3 times. Finish with 5-minute stretch. Log your time and reps. Stay hydrated.",
	},
	{
		Title:       "Phone Sales Calls",
		Description: "Make direct phone calls to warm leads or past clients.",
		Category:    "business",
		TimeMinutes: 60,
		Platform:    "phone",
		MissionText: "MISSION: Review your lead list. Select 10 warm leads. Call each one. Use this framework: Build rapport (2 min), Identify needs (3 min), Present solution (3 min), Close or schedule follow-up. Log all outcomes.",
	},
	{
		Title:       "Twitter/X Engagement Run",
		Description: "Build presence by engaging with industry leaders and hashtags.",
		Category:    "networking",
		TimeMinutes: 30,
		Platform:    "twitter",
		MissionText: "MISSION: Find 5 posts from industry leaders in your niche. Leave thoughtful comments that add value (not just 'Great post!'). Quote-tweet one with your own insight. Follow 10 relevant accounts.",
	},
	{
		Title:       "In-Person Networking Event",
		Description: "Prepare for and attend a local business networking event.",
		Category:    "networking",
		TimeMinutes: 120,
		Platform:    "in_person",
		MissionText: "MISSION: Review the event attendee list if available. Set a goal to have 5 meaningful conversations. Prepare your 30-second intro. Bring business cards. After each conversation, take notes on follow-up actions. Send follow-up emails within 24 hours.",
	},
	{
		Title:       "Book Reading Block",
		Description: "Read and take notes on a business or personal development book.",
		Category:    "learning",
		TimeMinutes: 45,
		Platform:    "in_person",
		MissionText: "MISSION: Select a business or self-improvement book. Read for 45 minutes with no distractions. Take notes on key concepts. Identify one idea to implement this week. Share your top insight on social media.",
	},
	{
		Title:       "Customer Follow-Up Calls",
		Description: "Check in with existing customers to build relationships and get referrals.",
		Category:    "business",
		TimeMinutes: 45,
		Platform:    "phone",
		MissionText: "MISSION: List 5 past customers. Call each to check on their satisfaction. Ask for feedback. Request a referral or testimonial from satisfied customers. Update your CRM with notes.",
	},
	{
		Title:       "Video Content Creation",
		Description: "Record and post a short-form video for social media.",
		Category:    "business",
		TimeMinutes: 30,
		Platform:    "instagram",
		MissionText: "MISSION: Choose one topic you can teach in under 60 seconds. Write a quick script (3 key points). Record 3 takes. Edit the best one with captions. Post to Instagram Reels and TikTok.",
	},
}

var seedPhotos = []Photo{
	{
		ImageURL:            "https://images.unsplash.com/photo-1507003211169-0a1dd7228f2d?w=400&h=400&fit=crop",
		VeteranName:         "Marcus Johnson",
		MissionAccomplished: "Launched a successful consulting firm helping other veterans transition to civilian careers.",
		BusinessName:        strPtr("Veteran Career Solutions"),
	},
	{
		ImageURL:            "https://images.unsplash.com/photo-1494790108377-be9c29b29330?w=400&h=400&fit=crop",
		VeteranName:         "Sarah Chen",
		MissionAccomplished: "Built a fitness coaching business with over 500 clients nationwide.",
		BusinessName:        strPtr("Military Fit Coaching"),
	},
	{
		ImageURL:            "https://images.unsplash.com/photo-1472099645785-5658abf4ff4e?w=400&h=400&fit=crop",
		VeteranName:         "David Williams",
		MissionAccomplished: "Created a tech startup that provides cybersecurity training to small businesses.",
		BusinessName:        strPtr("SecureVet Technologies"),
	},
	{
		ImageURL:            "https://images.unsplash.com/photo-1438761681033-6461ffad8d80?w=400&h=400&fit=crop",
		VeteranName:         "Emily Rodriguez",
		MissionAccomplished: "Opened three successful coffee shops employing fellow veterans.",
		BusinessName:        strPtr("Brew & Serve Coffee Co."),
	},
	{
		ImageURL:            "https://images.unsplash.com/photo-1500648767791-00dcc994a43e?w=400&h=400&fit=crop",
		VeteranName:         "James Thompson",
		MissionAccomplished: "Founded a construction company specializing in sustainable building practices.",
		BusinessName:        strPtr("Green Build Contractors"),
	},
	{
		ImageURL:            "https://images.unsplash.com/photo-1534528741775-53994a69daeb?w=400&h=400&fit=crop",
		VeteranName:         "Michelle Adams",
		MissionAccomplished: "Developed a mental health app specifically designed for veterans and their families.",
		BusinessName:        strPtr("MindStrong Wellness"),
	},
}

// SeedTemplates returns the built-in templates with stable ids.
func SeedTemplates() []MissionTemplate {
	out := make([]MissionTemplate, 0, len(seedTemplates))
	for _, item := range seedTemplates {
		item.ID = seedID("template", item.Title)
		out = append(out, item)
	}
	return out
}

func SeedPhotos() []Photo {
	out := make([]Photo, 0, len(seedPhotos))
	for _, item := range seedPhotos {
		item.ID = seedID("photo", item.VeteranName)
		out = append(out, item)
	}
	return out
}

func strPtr(value string) *string {
	return &value
}
