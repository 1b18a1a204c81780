package bot

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/NikunjSachdeva/DefiSensei-Bot/models"
)

const (
	replyUnknownCommand = "Unknown command. Use /help to see the available commands."
	replyNotLoggedIn    = "You need to be logged in to use this command. Please log in using /login."
	replyStorageError   = "An error occurred. Please try again later."

	replyRegistered         = "Registration successful!! Please check your email for confirmation."
	replyRegisteredNoMail   = "Failed to send confirmation email. Please check the email address and try again."
	replyAlreadyExists      = "This user already exists. Please try logging in."
	replyLoggedIn           = "Login successful!"
	replyInvalidLogin       = "Invalid username or password"
	replyVerifyToLogin      = "Please verify your OTP to complete the login process."
	replyLoginOTPSent       = "An OTP has been sent to your email. Please verify to complete the login process by using /verify_otp."
	replyOTPNotSent         = "Failed to send OTP. Please try again later."
	replyOTPSent            = "An OTP has been sent to your email. Please use /verify_otp to verify it."
	replyOTPVerified        = "OTP verified successfully. You can now use /recover_username or /reset_password."
	replyInvalidOTP         = "Invalid or expired OTP. Please try again."
	replyLoggedOut          = "Logout successful!"
	replyDeleted            = "Your account has been successfully deleted. A confirmation email has been sent."
	replyDeletedNoMail      = "Failed to send confirmation email. Please try again later. You may receive it shortly."
	replyInvalidDelete      = "Invalid credentials. Please check your username, password, and email."
	replyRequestOTPFirst    = "Please verify your email by using /request_otp."
	replyPasswordReset      = "Your password has been reset successfully."
	replyFetchFailed        = "Failed to fetch data. Please try again later."
	replyPredictionDisabled = "Prediction model is not available."
	replyNoNews             = "No news articles found."
	replyNewsFailed         = "Failed to fetch news. Please try again later."
)

const replyStart = `Hii!! Welcome to DeFiSensei.
Thank you for choosing this bot.
Let's get you registered to experience all
features of the bot.
Type /register to start registration process.
Type /help to view available commands.`

const replyHelp = `Available commands with their usage:

Enter the commands without <>

/start - Welcome message
/help - List available commands
/register <username> <password> <email> - Register a new account
/login <username> <password> - Login to your account
/logout - Logout from your account
/delete <username> <password> <email> - Delete your account
/request_otp <email> - Get a one-time code by email
/verify_otp <email> <otp> - Verify the one-time code
/recover_username <email> - Recover your username using your email
/reset_password <email> <new_password> - Reset your account password
/coin <coin name> - Know the current price of a coin. Eg: /coin bitcoin
/forex <from> <to> - Get live price for a specific forex pair
/stock <stock symbol> - Get live price for a specific stock
/market - Live prices of top stocks and forex pairs
/finance_news - Top business headlines
/budget_highlights - Highlights of the 2024 India Budget
/predict <stock symbol> - Predict investment return`

func usageReply(usage string) string {
	return "Usage: " + usage
}

func usernameReply(username string) string {
	return fmt.Sprintf("Your username is %s.", username)
}

func coinPriceReply(coin, sign string, price float64) string {
	return fmt.Sprintf("The current price of %s is %s%s", coin, sign, formatNumber(price))
}

func coinNotFoundReply(coin string) string {
	return fmt.Sprintf("Coin '%s' not found.", coin)
}

func exchangeRateReply(from, to string, rate float64) string {
	return fmt.Sprintf("The current exchange rate from %s to %s is %s", from, to, formatNumber(rate))
}

func pairNotFoundReply(from, to string) string {
	return fmt.Sprintf("No data available for the currency pair %s/%s.", from, to)
}

func stockPriceReply(symbol, sign string, price float64) string {
	return fmt.Sprintf("The current price of %s is %s%s", symbol, sign, formatNumber(price))
}

func symbolNotFoundReply(symbol string) string {
	return fmt.Sprintf("No price data found for %s", symbol)
}

// predictionReply renders value as a percentage with two decimals.
func predictionReply(symbol string, value float64) string {
	return fmt.Sprintf("The predicted return for %s is %.2f%%", symbol, value*100)
}

type snapshotLine struct {
	label string
	sign  string
	value float64
}

func marketSnapshotReply(worldwide, india, forex []snapshotLine) string {
	var b strings.Builder
	b.WriteString("Live Market Updates:\n")

	sections := []struct {
		title, empty string
		lines        []snapshotLine
	}{
		{"Top Stocks Worldwide:", "No data available for top worldwide stocks.", worldwide},
		{"Top Stocks in India:", "No data available for top Indian stocks.", india},
		{"Forex Prices:", "No data available for forex prices.", forex},
	}
	for _, sec := range sections {
		b.WriteString("\n")
		if len(sec.lines) == 0 {
			b.WriteString(sec.empty + "\n")
			continue
		}
		b.WriteString(sec.title + "\n")
		for _, l := range sec.lines {
			fmt.Fprintf(&b, "%s: %s%s\n", l.label, l.sign, formatNumber(l.value))
		}
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func newsReply(articles []models.Article) string {
	parts := make([]string, 0, len(articles))
	for _, a := range articles {
		item := a.Title
		if a.Description != "" {
			item += "\n" + a.Description
		}
		if a.URL != "" {
			item += "\nRead more: " + a.URL
		}
		parts = append(parts, item)
	}

	return "Top business headlines:\n\n" + strings.Join(parts, "\n\n")
}

var budgetHighlights = []string{
	"Income Tax: There are no changes in the income tax slabs or rates. The new regime tax slabs remain as follows: no tax up to ₹3 lakh, 5% for income between ₹3-6 lakh, 10% for ₹6-9 lakh, 15% for ₹9-12 lakh, and 20% for ₹12-15 lakh. Income above ₹15 lakh is taxed at 30%.",
	"Fiscal Deficit: The fiscal deficit target for FY25 is set at 5.1% of GDP. This is part of a continued effort to reduce the fiscal deficit to 4.5% by FY26.",
	"Economic Growth: The budget continues to focus on macroeconomic stability and growth, with increased investments in infrastructure, agriculture, and domestic tourism.",
	"Capital Expenditure: Capital expenditure is increased by 11.1% to ₹11.11 lakh crore, which is 3.4% of GDP. This includes significant allocations for infrastructure projects.",
	"Railways: 40,000 normal rail bogies will be converted to Vande Bharat to enhance passenger safety and comfort. Three major railway corridors have also been announced.",
	"Women's Empowerment: The 'Lakhpati Didi' scheme aims to empower women in rural areas, with the target increased from 2 crore to 3 crore women benefiting from the program.",
	"Defense: The budget includes a significant allocation for defense to ensure national security and modernization of the armed forces.",
	"Customs Duty: No changes have been made to the customs duties, maintaining the status quo to provide stability for businesses.",
	"Digital Infrastructure: Continued investment in digital infrastructure is emphasized, with a focus on Global Capability Centres (GCCs) and digital transformation.",
	"Green Energy: Support for green energy initiatives continues, with significant investments in renewable energy projects.",
	"Healthcare: The budget allocates funds for the improvement of healthcare infrastructure and services, aiming to make healthcare more accessible and affordable.",
	"Education: Increased funding for educational initiatives, including skill development and vocational training programs.",
	"Stock Market: The budget is expected to positively impact the stock market with its focus on fiscal discipline and growth-oriented measures.",
	"Middle Class: Despite no changes in tax rates, the budget includes measures to simplify tax laws and improve compliance, which could benefit the middle class by making tax filing easier.",
	"Lower Class: Programs aimed at poverty alleviation and social welfare continue to receive funding, ensuring support for the lower class.",
	"Upper Middle Class: Initiatives to boost housing, infrastructure, and digital services benefit the upper middle class by improving the overall quality of life and economic opportunities.",
	"Agriculture: Significant investment in the agriculture sector, including subsidies and support for farmers to boost productivity and income.",
	"Tourism: Increased funding for domestic tourism to promote cultural heritage and boost local economies.",
	"Government Expenditure: The budget maintains a focus on prudent government expenditure to ensure long-term economic stability.",
	"Economic Corridors: Development of commodity-specific economic rail corridors to reduce logistics costs and improve competitiveness in manufacturing.",
}

func budgetHighlightsReply() string {
	return "Here are the highlights of the 2024 India Budget:\n\n" + strings.Join(budgetHighlights, "\n\n")
}

// formatNumber prints the shortest representation that round-trips.
func formatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// currencySign maps a quote currency code to the sign shown in replies.
func currencySign(currency string) string {
	switch strings.ToLower(currency) {
	case "", "inr":
		return "₹"
	case "usd":
		return "$"
	case "eur":
		return "€"
	case "gbp":
		return "£"
	case "jpy":
		return "¥"
	default:
		return strings.ToUpper(currency) + " "
	}
}
