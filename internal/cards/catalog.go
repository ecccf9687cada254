// internal/cards/catalog.go
package cards

// The two catalogs are disjoint by construction: prompts are fill-in-the-blank
// or question cards, responses are noun phrases. Card text is opaque to the
// engine; the blank marker is purely presentational.

// PromptCards is the fixed prompt catalog. One prompt is drawn per round.
var PromptCards = []string{
	"The real reason I was late to work: ____.",
	"My therapist says I need to stop talking about ____.",
	"Nothing ruins a first date faster than ____.",
	"The startup's pivot to ____ surprised absolutely no one.",
	"I knew the party was over when someone brought out ____.",
	"____: now available in family size.",
	"My autobiography will be titled 'A Life Ruined by ____'.",
	"The secret ingredient in grandma's casserole is ____.",
	"Next season on reality TV: celebrities compete at ____.",
	"What's that smell? ____.",
	"The committee has voted to replace the office coffee machine with ____.",
	"Scientists have finally discovered the cause of ____.",
	"My New Year's resolution is to cut back on ____.",
	"The museum's newest exhibit: a thousand years of ____.",
	"I can't sleep without ____.",
	"Today's weather forecast: cloudy with a chance of ____.",
	"The wifi password is ____.",
	"In my defense, nobody told me about ____.",
	"The wedding was beautiful until ____ showed up.",
	"My personal brand is basically ____.",
	"Breaking news: local man arrested for ____.",
	"The job listing required five years of experience in ____.",
	"____: that's how I lost my last three friends.",
	"The fortune cookie just said ____.",
	"Our company retreat this year is themed around ____.",
	"The last thing I googled at 3am was ____.",
	"My landlord finally responded to my complaint about ____.",
	"The kids these days are all obsessed with ____.",
	"I traded my car for ____ and I regret nothing.",
	"The group chat has been renamed to '____'.",
	"My doctor looked at the x-ray and just whispered '____'.",
	"The school play was cancelled because of ____.",
	"For my final wish, I ask only for ____.",
	"Step one of my five-year plan: ____.",
	"The neighbors are complaining about ____ again.",
	"Nothing says romance like ____.",
}

// ResponseCards is the fixed response catalog. Seven are dealt to each player
// on join; one replaces each submitted card while the pool lasts.
var ResponseCards = []string{
	"a suspiciously confident pigeon",
	"lukewarm gas station sushi",
	"an interpretive dance about taxes",
	"my collection of expired coupons",
	"aggressive morning-person energy",
	"a motivational poster of a cat",
	"the world's saddest trombone solo",
	"forty identical traffic cones",
	"an unsolicited PowerPoint presentation",
	"a decorative bowl of wax fruit",
	"the neighbor's leaf blower at 6am",
	"a haunted vending machine",
	"three raccoons in a trench coat",
	"my unfinished novel",
	"a lifetime supply of packing peanuts",
	"the office printer's personal vendetta",
	"an extremely detailed conspiracy board",
	"one single, perfect meatball",
	"a karaoke machine with no off switch",
	"the last slice of pizza, eaten in silence",
	"a self-help book written by a parrot",
	"glitter that never fully vacuums up",
	"an escalator to nowhere",
	"my browser history",
	"a firm yet disappointing handshake",
	"the concept of linear time",
	"an inflatable tube man with big dreams",
	"soup that is somehow both too hot and too cold",
	"a yoga class for competitive people",
	"the wrong kind of mushrooms",
	"a passive-aggressive sticky note",
	"an alarm clock that screams compliments",
	"the entire discography of a band I made up",
	"a pet rock with separation anxiety",
	"mandatory fun",
	"a GPS that only gives emotional directions",
	"the smell of a brand-new shower curtain",
	"an all-you-can-eat salad bar, tragically",
	"a surprisingly heavy feather",
	"my fourth cup of coffee",
	"a committee formed to discuss forming committees",
	"socks with individual toes",
	"an overly literal genie",
	"the mitochondria, powerhouse of the cell",
	"a llama with a business casual wardrobe",
	"an apology written in skywriting",
	"the void, but cozy",
	"seventeen open browser tabs",
	"a trampoline in a china shop",
	"elevator music, but louder",
	"a sommelier for tap water",
	"the instruction manual, unread",
	"a very polite heist",
	"my imaginary friend's imaginary friend",
	"a treadmill desk at maximum speed",
	"the fine print",
	"an owl that judges silently",
	"artisanal ice cubes",
	"a group project where I did everything",
	"the last donut, cut into quarters",
	"an umbrella that opens indoors only",
	"my retirement plan: the lottery",
	"a choir of kazoos",
	"the phrase 'per my last email'",
	"a skeleton doing household chores",
	"an infinite breadstick basket",
	"the courage to reply-all",
	"a garden gnome witness protection program",
	"freshly laminated everything",
	"a dramatic reading of the terms and conditions",
	"the one sock the dryer spared",
	"an echo with opinions",
	"a staring contest with a goldfish",
	"the thermostat wars",
	"a parade for minor achievements",
	"my knees, announcing the weather",
	"an aggressively average Tuesday",
	"the decorative towels nobody may use",
	"a moth with main-character energy",
	"whatever is in the office fridge",
}
