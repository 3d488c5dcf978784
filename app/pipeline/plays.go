package pipeline

// DefaultPlays is the canon tracked when no play list file is given.
var DefaultPlays = []string{
	"All's Well That Ends Well",
	"Antony and Cleopatra",
	"As You Like It",
	"The Comedy of Errors",
	"Coriolanus",
	"Cymbeline",
	"Hamlet",
	"Henry IV",
	"Henry V",
	"Henry VI",
	"Henry VIII",
	"Julius Caesar",
	"King Lear",
	"Love's Labour's Lost",
	"Macbeth",
	"Measure for Measure",
	"The Merchant of Venice",
	"The Merry Wives of Windsor",
	"A Midsummer Night's Dream",
	"Much Ado About Nothing",
	"Othello",
	"Pericles",
	"Richard II",
	"Richard III",
	"Romeo and Juliet",
	"The Taming of the Shrew",
	"The Tempest",
	"Timon of Athens",
	"Titus Andronicus",
	"Troilus and Cressida",
	"Twelfth Night",
	"Two Gentlemen of Verona",
	"The Winter's Tale",
}
