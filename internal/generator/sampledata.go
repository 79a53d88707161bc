package generator

// Sample value arrays for entity generation.
var (
	brandWords = []string{
		"Thread", "Hem", "Seam", "Velvet", "Linen", "Indigo", "Juniper",
		"Marigold", "Atelier", "Willow", "Cedar", "Fern", "Opal", "Saffron",
		"Clover", "Harbor", "Meadow", "Ember", "Dune", "Aster",
	}
	brandSuffixes = []string{
		"Studio", "Collective", "& Co", "Label", "Supply", "Wardrobe",
		"House", "Closet", "Apparel", "Edit",
	}

	productAdjectives = []string{
		"Relaxed", "Cropped", "Oversized", "Tailored", "Pleated", "Ribbed",
		"Belted", "Draped", "Boxy", "Fitted", "High-Rise", "Wide-Leg",
		"Quilted", "Brushed", "Washed", "Structured",
	}
	productNouns = []string{
		"Wrap Dress", "Midi Skirt", "Linen Shirt", "Denim Jacket", "Knit Tee",
		"Cargo Pant", "Slip Dress", "Blazer", "Trench Coat", "Jumpsuit",
		"Cardigan", "Tank Top", "Maxi Dress", "Chino Short", "Hoodie",
		"Satin Blouse",
	}

	variantSizes  = []string{"XS", "S", "M", "L", "XL"}
	variantColors = []string{
		"Black", "Ivory", "Olive", "Rust", "Navy", "Blush", "Charcoal",
		"Sand", "Sage", "Cocoa",
	}

	postCaptions = []string{
		"New drop just landed. Which color are you taking?",
		"Styled three ways. Send us a photo to try it on virtually!",
		"Back in stock by popular demand.",
		"Our bestseller, now in two new colors.",
		"POV: you found the perfect fit without leaving your couch.",
		"Tap to see how it fits. DM us a photo for your own try-on.",
		"Weekend fit inspiration, straight from the studio.",
		"This one sold out twice. Don't sleep on it.",
		"From our latest lookbook. Try it on in DMs.",
		"Real customers, real try-ons. Your turn.",
	}

	messagePreviews = []string{
		"Here's your try-on! What do you think?",
		"Could you send a full-body photo?",
		"That color looks great on you!",
		"We have your size in stock.",
		"Your order is on its way!",
		"Would you like to see it in another color?",
		"Thanks for reaching out!",
		"The fit looks perfect.",
	}

	discountCodes = []string{
		"WELCOME10", "TRYON15", "VIP20", "SUMMER5", "COMEBACK10", "STYLIST15",
	}

	inventoryReasons = []string{
		"sale", "restock", "return", "adjustment", "damage",
	}

	timezones = []string{
		"UTC", "America/New_York", "America/Los_Angeles", "America/Chicago",
		"Europe/London", "Europe/Paris", "Europe/Berlin", "Asia/Tokyo",
		"Australia/Sydney",
	}
)
