package bot

// usage lists every supported command for the help reply.
func usage() string {
	return `Commands and arguments:
order <meal> <price> from <restaurant>
	- Order meal from restaurant
summarize <restaurant>
	- Summarize all orders from restaurant
summarize all
	- Summarize orders from all restaurants
notify <restaurant> <message>
	- Send message to everyone who ordered from restaurant
discount <restaurant> <percentage>%
	- Apply a discount to all orders from restaurant
cancel my orders
	- Cancel your standing orders
clear <restaurant>
	- Clear all orders from restaurant
clear all
	- Clear all orders`
}
