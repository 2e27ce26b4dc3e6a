package mission

// Placeholders understood by the composer: {topic}, {platform}.

var directHooks = []string{
	"Stop waiting for the perfect moment to talk about {topic}. It does not exist.",
	"Nobody is coming to build your {topic} audience for you. Today you do it yourself.",
	"You know more about {topic} than 90% of the people posting about it. Act like it.",
	"Excuses do not scale. Output on {topic} does.",
	"One focused hour on {topic} beats a week of thinking about it.",
}

var motivationalHooks = []string{
	"You already survived harder missions than {topic}. This one is yours to win.",
	"Discipline got you through service. It will carry {topic} the same way.",
	"Every veteran business started with one brave post. Today that post is about {topic}.",
	"The people who need your take on {topic} are waiting. Show up for them.",
	"Small wins stack. Today's win is putting {topic} in front of the right people.",
}

var tacticalHooks = []string{
	"Objective locked: own the conversation about {topic} on {platform} this week.",
	"Recon complete. Your audience is asking about {topic}. Time to move.",
	"Target: the decision-makers who care about {topic}. Approach: precise and repeatable.",
	"Intel says {topic} content gets saved and shared when it is specific. Be specific.",
	"Mission window is open. Deploy your best thinking on {topic} before it closes.",
}

var storytellingHooks = []string{
	"The first time I talked about {topic}, nobody listened. Here is what changed.",
	"Three years ago I had no idea {topic} would change my business.",
	"A client asked me one question about {topic} and it rewired how I work.",
	"I learned more about {topic} in one bad week than in a year of good ones.",
	"Everyone remembers their first mission. Mine taught me everything about {topic}.",
}

var defaultExecutionSets = [][]string{
	{
		"Write one post that teaches a single lesson about {topic}",
		"Open with a line that earns the next line",
		"Add one specific number or result from your own experience",
		"End with a question your audience can answer in one sentence",
		"Reply to every comment within the first hour",
	},
	{
		"List five questions customers ask you about {topic}",
		"Pick the one you answer most often",
		"Answer it in under 150 words",
		"Publish it on {platform} before noon",
	},
	{
		"Find five people on {platform} already talking about {topic}",
		"Leave a comment on each that adds value, not flattery",
		"Follow up with a direct message to the two best conversations",
		"Offer help before asking for anything",
		"Log every interaction in your tracker",
		"Schedule one follow-up for next week",
	},
	{
		"Record a 60-second take on the biggest myth about {topic}",
		"State the myth in the first five seconds",
		"Give three reasons it is wrong",
		"Close with what to do instead",
		"Add captions before posting",
		"Pin your own comment with a resource link",
		"Share the clip with three people who would benefit",
	},
	{
		"Write down one failure you had with {topic}",
		"Explain what you would do differently today",
		"Turn the lesson into a checklist of three steps",
		"Share it on {platform} with a clear takeaway",
		"Ask your audience for their version of the story",
	},
	{
		"Block 30 minutes on your calendar for {topic} only",
		"Draft three short posts in one sitting",
		"Publish the strongest one today",
		"Schedule the other two for later this week",
	},
}

var defaultStyleProfiles = map[Style]StyleProfile{
	StyleDirect: {
		Prefix:          "STRAIGHT TALK:",
		OperationHeader: true,
		Hooks:           directHooks,
	},
	StyleMotivational: {
		Hooks: motivationalHooks,
	},
	StyleTactical: {
		Prefix:          "SITREP:",
		OperationHeader: true,
		Hooks:           tacticalHooks,
	},
	StyleStorytelling: {
		Hooks: storytellingHooks,
	},
}

var defaultGoalProfiles = map[Goal]GoalProfile{
	GoalGrowAudience: {Objectives: []string{
		"Engage with your target audience on {platform}. Comment on posts from industry leaders with real insight and share one piece of content about {topic} that helps your followers.",
		"Tell a story about {topic} that your audience can learn from and respond to every comment within the first hour.",
		"Join three relevant conversations about {topic} on {platform}. Contribute without selling. Relationships first, business follows.",
	}},
	GoalMakeSales: {Objectives: []string{
		"Reach five warm leads on {platform} using the problem-agitation-solution framework around {topic}. Track every touch.",
		"Identify three prospects who showed interest in {topic} and send each a message that addresses their specific pain point with a clear call-to-action.",
		"Review your pipeline, send proposals to qualified leads, and answer objections about {topic} with empathy and facts.",
	}},
	GoalBuildNetwork: {Objectives: []string{
		"Reach out on {platform} to five people you admire in the {topic} space. Lead with value and be specific.",
		"Check in with three key contacts, congratulate recent wins, and offer a resource on {topic}.",
		"Connect with ten professionals in industries next to {topic} with requests that reference something real about them.",
	}},
	GoalLearnSkill: {Objectives: []string{
		"Find the best resource on {topic}, take detailed notes, and share one lesson with your network on {platform}.",
		"Practice one micro-skill inside {topic}. Track your progress and write down the next learning step.",
		"Study how an expert on {platform} approaches {topic} and implement one of their tactics today.",
	}},
	GoalCreateContent: {Objectives: []string{
		"Outline three key points about {topic}, create the piece for {platform}, publish it, and engage with early responses.",
		"Repurpose something you already made about {topic} into a new format optimized for {platform}.",
		"Brainstorm five ideas about {topic}, create two or three of them, and schedule them across the week.",
	}},
}

var defaultPlatformProfiles = map[Platform]PlatformProfile{
	PlatformLinkedIn: {
		Rules: []string{
			"Keep it professional but human. No walls of text, short paragraphs only.",
			"Tag no more than two people and only when they add to the conversation.",
			"Post between 7 and 9 AM on a weekday when decision-makers scroll.",
		},
		CallsToAction: []string{
			"Drop your take in the comments. I read every one.",
			"Follow for one practical lesson a day from the field.",
			"Send me a connection request with one word: MISSION.",
		},
	},
	PlatformInstagram: {
		Rules: []string{
			"Lead with a visual. The first frame decides if anyone reads the caption.",
			"Keep captions under 150 words and put the hook in the first line.",
			"Use stories to follow up within 24 hours of posting.",
		},
		CallsToAction: []string{
			"Save this for your next planning session.",
			"Share this with one veteran who is building something.",
			"Tap the link in bio to start your own mission.",
		},
		Suffix: "#VeteranOwned #AttentionOps #SmallBusiness #Entrepreneur #MissionFirst",
	},
	PlatformTwitter: {
		Rules: []string{
			"One idea per post. If it needs more, make it a thread.",
			"Quote-post industry leaders with your own insight instead of replying with praise.",
		},
		CallsToAction: []string{
			"Repost if this helped. Reply if you disagree.",
			"Follow for daily missions.",
		},
	},
	PlatformFacebook: {
		Rules: []string{
			"Post in groups where your customers already gather, and follow each group's rules.",
			"Write like you talk to a neighbor. Warm, plain, and specific.",
		},
		CallsToAction: []string{
			"Comment below with your biggest question and I will answer it this week.",
			"Share this with someone in your community who needs it.",
		},
	},
	PlatformEmail: {
		Rules: []string{
			"One email, one ask. Keep the subject line under seven words.",
			"Personalize the first sentence for every recipient.",
		},
		CallsToAction: []string{
			"Reply with YES and I will send the next step.",
			"Book 15 minutes on my calendar this week.",
		},
	},
	PlatformPhone: {
		Rules: []string{
			"Build rapport for two minutes before you pitch anything.",
			"Ask more questions than you answer and take notes during every call.",
		},
		CallsToAction: []string{
			"Close every call with a scheduled next step.",
			"Ask for one referral before you hang up.",
		},
	},
	PlatformInPerson: {
		Rules: []string{
			"Have your 30-second intro ready and lead with how you help.",
			"Aim for five meaningful conversations, not fifty business cards.",
		},
		CallsToAction: []string{
			"Send a follow-up message to every new contact within 24 hours.",
			"Set the next meeting before you leave the room.",
		},
	},
}

var fallbackPlatformProfile = PlatformProfile{
	Rules: []string{
		"Show up consistently and lead with value before you ask for anything.",
	},
	CallsToAction: []string{
		"Report back when the mission is complete.",
	},
}
