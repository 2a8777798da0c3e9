package classifier

import "reviewlens/types"

// categoryTable is one (label, keywords) pair. Tables are scanned in
// declaration order and keywords in listed order; the first keyword
// found as a substring of the lowercased review decides the label, so
// the declaration order is the tie-break and must not be reordered.
type categoryTable struct {
	label    string
	keywords []string
}

var driverTables = []categoryTable{
	{types.DriverProcess, []string{
		"smooth", "seamless", "process", "efficient", "straightforward", "hassle-free", "user-friendly",
		"convenient", "fast", "prompt", "timely", "organized", "structured", "streamlined",
		"consistent", "transparent", "informative", "clear", "secure", "reliable", "accurate",
		"personalized", "tailored", "flexible", "adaptable", "responsive", "accessible",
		"compliant", "ethical", "trustworthy", "confidential", "supportive", "value-added",
		"cost-effective", "comprehensive", "end-to-end", "customer-focused", "needs-based",
		"intuitive", "logical", "well-documented", "standardized", "repeatable", "scalable",
		"agile", "data-driven", "insightful", "proactive", "preventive", "continuous improvement",
		"innovative", "transformative", "sustainable", "resilient", "risk-aware", "compliant",
		"auditable", "traceable", "measurable", "transparent", "accountable", "collaborative",
		"workflow", "procedure", "protocol", "methodology", "approach", "technique", "strategy",
		"framework", "lifecycle", "transition", "migration", "implementation", "execution", "delivery",
		"simple", "easy", "slow", "disorganized", "inefficient", "confusing", "outdated",
		"cumbersome", "rigid", "error-prone", "bureaucratic", "redundant", "inconsistent", "unresponsive",
	}},
	{types.DriverTechnology, []string{
		"intuitive", "invalid", "pin", "user-friendly", "modern", "advanced", "innovative", "cutting-edge",
		"reliable", "efficient", "fast", "responsive", "secure", "robust", "stable",
		"integrated", "seamless", "accessible", "mobile-friendly", "omnichannel", "personalized",
		"customizable", "interactive", "intelligent", "automated", "self-service", "convenient",
		"informative", "transparent", "real-time", "data-driven", "analytical", "insightful",
		"scalable", "flexible", "adaptable", "future-proof", "compatibility", "interoperability",
		"cloud-based", "virtualized", "resilient", "fault-tolerant", "privacy-compliant",
		"contextual", "predictive", "cognitive", "conversational", "natural language", "voice-enabled",
		"multi-modal", "immersive", "augmented", "virtual", "blockchain-powered", "distributed",
		"decentralized", "sustainable", "energy-efficient", "eco-friendly", "ethical", "transparent",
		"accountable", "inclusive", "accessible", "register", "buggy", "glitchy", "glitch",
		"app", "application", "mobile app", "android app", "ios app", "website", "web app", "portal",
		"platform", "interface", "dashboard", "chatbot", "virtual assistant", "voice assistant",
		"bug", "download", "attachment", "load", "crashing", "install", "reinstall", "code", "error",
		"rin", "hack", "hacking", "scam", "login", "log", "notification", "track", "location", "offline",
		"pdf", "image", "upload", "photo", "click", "slow", "unresponsive", "insecure", "complicated",
		"hard-to-use", "malfunction", "fail", "downtime",
	}},
	{types.DriverPeople, []string{
		"friendly", "knowledgeable", "helpful", "patient", "attentive", "empathetic", "responsive",
		"professional", "courteous", "communicative", "efficient", "dedicated", "well-trained",
		"reliable", "accessible", "multilingual", "personable", "understanding", "supportive",
		"experienced", "reassuring", "proactive", "approachable", "caring", "compassionate",
		"trustworthy", "accommodating", "service-minded", "respectful", "polite", "empowering",
		"motivating", "encouraging", "engaging", "clear communication", "problem-solving",
		"situational awareness", "emotional intelligence", "customer-centric", "culturally aware",
		"adaptive", "resilient", "collaborative", "team-oriented", "passionate", "committed",
		"accountable", "ethical", "transparent", "authentic", "they", "he", "man", "lady", "she",
		"rude", "incompetent", "unhelpful", "impatient", "inattentive", "insensitive", "unresponsive",
		"unprofessional", "discourteous", "uncommunicative", "inefficient", "careless", "untrained",
		"unreliable", "inaccessible", "uninformed", "impersonal", "unsupportive", "inexperienced",
		"dismissive", "passive", "unapproachable", "uncaring", "untrustworthy", "inflexible",
		"condescending", "demotivating", "discouraging", "disengaging", "unclear communication",
		"problem-ignoring", "situationally unaware", "emotionally unintelligent", "self-centered",
		"culturally insensitive", "rigid", "fragile", "uncooperative", "individualistic", "apathetic",
		"uncommitted", "unaccountable", "unethical", "opaque", "inauthentic",
	}},
}

var topicTables = []categoryTable{
	{types.TopicBilling, []string{
		"invoice", "payment", "bill", "charge", "refund", "credit", "debit", "balance", "overdue",
		"fee", "statement", "account", "transaction", "receipt", "pay", "finance", "cost", "expense",
		"price", "amount", "due", "overcharge", "undercharge", "billing cycle",
	}},
	{types.TopicTechSupport, []string{
		"tech support", "technical", "troubleshoot", "error", "issue", "bug", "glitch", "malfunction",
		"repair", "fix", "installation", "setup", "connectivity", "network", "software", "hardware",
		"reboot", "reset", "upgrade", "update", "compatibility", "diagnostics", "assistance", "support",
		"crash",
	}},
	{types.TopicAccount, []string{
		"account", "profile", "login", "password", "username", "registration", "sign up", "sign in",
		"subscription", "renewal", "cancel", "deactivate", "activate", "update", "modify",
		"personal information", "user ID", "credentials", "security", "verification", "access",
		"account settings",
	}},
	{types.TopicProduct, []string{
		"product", "feature", "specification", "details", "model", "version", "variant", "description",
		"availability", "stock", "price", "cost", "warranty", "guarantee", "manual", "guide",
		"brochure", "catalog", "options", "selection", "usage", "demo", "sample",
	}},
	{types.TopicService, []string{
		"service", "inquiry", "information", "details", "availability", "schedule", "appointment",
		"booking", "reservation", "timing", "location", "facility", "feature", "benefit", "offer",
		"package", "plan", "subscription", "contract", "agreement", "terms",
	}},
	{types.TopicComplaints, []string{
		"complaint", "issue", "problem", "dissatisfaction", "feedback", "suggestion", "review",
		"criticism", "concern", "trouble", "negative experience", "poor service", "bad", "unhappy",
		"unsatisfied", "resolved", "unresolved", "escalate", "escalation", "grievance", "refund",
		"compensation",
	}},
	{types.TopicSales, []string{
		"sales", "purchase", "buy", "order", "renew", "renewal", "contract", "agreement", "deal",
		"discount", "offer", "promo", "pricing", "cost", "quote", "billing", "payment", "subscription",
		"trial", "demo", "upgrade", "conversion", "checkout", "transaction",
	}},
	{types.TopicShipping, []string{
		"shipping", "delivery", "dispatch", "shipment", "package", "courier", "tracking", "track",
		"status", "estimated delivery", "delay", "lost", "damaged", "return", "replacement",
		"logistics", "freight", "parcel", "order", "receive", "warehouse", "logistics", "carrier",
	}},
	{types.TopicReturns, []string{
		"return", "exchange", "replacement", "refund", "credit", "policy", "terms", "conditions",
		"process", "procedure", "defective", "damaged", "wrong item", "incorrect", "sent", "receive",
		"receipt", "product", "package", "return label", "authorization", "approval", "inspection",
	}},
	{types.TopicGeneral, []string{
		"general", "inquiry", "question", "ask", "information", "details", "assistance", "help",
		"support", "contact", "reach out", "need", "want", "clarify", "understand", "query",
		"explore", "guidance", "advice", "basic", "common",
	}},
}
