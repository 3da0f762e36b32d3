package samples

import "github.com/iWorld-y/fake_news_detector/app/detector/pkg/model"

var articles = []model.SampleArticle{
	{
		ID:             "1",
		Title:          "Scientists Announce Breakthrough in Renewable Energy Storage",
		Content:        "Researchers at MIT have developed a new battery technology that could revolutionize renewable energy storage. The lithium-metal battery demonstrates unprecedented energy density and charging speed. The research team, led by Dr. Sarah Johnson, published their findings in Nature Energy journal. The technology uses a novel solid electrolyte that prevents dendrite formation, a major challenge in lithium-metal batteries. Initial tests show the battery can charge to 80% capacity in just 10 minutes while maintaining stability over 10,000 charge cycles. The research was funded by the Department of Energy and several private investors. Commercial applications could begin within 5-7 years pending further testing and regulatory approval.",
		Source:         "BBC News",
		Category:       "Technology",
		ExpectedResult: model.PredictionReal,
	},
	{
		ID:             "2",
		Title:          "SHOCKING: Aliens Land in Central Park, Government Covers Up Truth",
		Content:        "BREAKING NEWS: Multiple witnesses report seeing UFO landing in Central Park last night!!! Government agents immediately cordoned off the area and are refusing to comment. Sources close to the White House say President is in emergency meetings with military officials. The aliens allegedly made contact with several joggers before disappearing into thin air. This reporter has exclusive photos that THEY don't want you to see! Wake up people - the truth is finally coming out! Share this before it gets deleted! The mainstream media won't report this because they're all controlled by the deep state. Several Hollywood celebrities have already tweeted their support for disclosure. This is the moment we've all been waiting for!!!",
		Source:         "Alternative Truth Network",
		Category:       "Conspiracy",
		ExpectedResult: model.PredictionFake,
	},
	{
		ID:             "3",
		Title:          "Federal Reserve Announces Interest Rate Decision",
		Content:        "The Federal Reserve announced today that it will maintain the federal funds rate at its current level of 5.25-5.50%. Fed Chair Jerome Powell stated during the press conference that the decision reflects the committee's assessment of current economic conditions and inflation trends. Recent economic data shows inflation has decreased to 3.2% year-over-year, down from the previous month's 3.4%. The unemployment rate remains steady at 3.8%. Powell emphasized the Fed's commitment to bringing inflation back to the 2% target while maintaining employment stability. The next Federal Open Market Committee meeting is scheduled for December 12-13. Financial markets responded positively to the announcement, with major indices closing up 0.8%.",
		Source:         "Reuters",
		Category:       "Economics",
		ExpectedResult: model.PredictionReal,
	},
	{
		ID:             "4",
		Title:          "Miracle Cure: Doctors Hate This One Simple Trick That Cures Everything",
		Content:        "Local mom discovers amazing secret that Big Pharma doesn't want you to know! Susan from Ohio used this ONE WEIRD TRICK to cure her diabetes, arthritis, and depression in just 7 days! Doctors are furious because this simple method is putting them out of business. The secret ingredient that you probably have in your kitchen right now can cure over 200 diseases including cancer! Click here to discover what it is before the government bans this information! Limited time offer - this video will be taken down soon. Thousands of people have already been cured using this method. Don't let the medical establishment keep you sick for profit. Act now before it's too late! WARNING: This may shock you!",
		Source:         "Natural Health Secrets",
		Category:       "Health",
		ExpectedResult: model.PredictionFake,
	},
	{
		ID:             "5",
		Title:          "Climate Summit Reaches Historic Agreement on Carbon Emissions",
		Content:        "World leaders at the COP29 climate summit in Dubai have reached a landmark agreement to transition away from fossil fuels. The agreement, signed by 195 countries, establishes binding targets for carbon reduction and renewable energy adoption. UN Secretary-General António Guterres called it 'a turning point in the fight against climate change.' The deal includes $100 billion in funding for developing nations to transition to clean energy. Key provisions include a 43% reduction in global emissions by 2030 and net-zero emissions by 2050. Environmental groups have praised the agreement while acknowledging the challenges ahead. Implementation will be monitored through annual review processes.",
		Source:         "The Guardian",
		Category:       "Environment",
		ExpectedResult: model.PredictionReal,
	},
	{
		ID:             "6",
		Title:          "New Study Reveals Coffee Prevents All Diseases and Makes You Immortal",
		Content:        "SCIENTISTS STUNNED! Drinking 10 cups of coffee daily makes you IMMORTAL according to new study! This SHOCKING discovery has medical professionals worldwide in an uproar. The study, conducted by the Institute of Coffee Research (definitely a real place), found that coffee drinkers live FOREVER and never get sick. Big Pharma is trying to suppress this information because it would put them out of business! The secret is in the magical antioxidants that literally repair your DNA and reverse aging. One participant, aged 150, credits his longevity to drinking coffee non-stop since 1850. DOCTORS HATE HIM! The government is planning to ban coffee to keep you sick and dependent on expensive medical treatments. Stock up now before it's too late!",
		Source:         "Daily Health Hoax",
		Category:       "Health",
		ExpectedResult: model.PredictionFake,
	},
	{
		ID:             "7",
		Title:          "Tech Giants Report Strong Q3 Earnings Despite Market Volatility",
		Content:        "Major technology companies reported better-than-expected third-quarter earnings, with Apple, Microsoft, and Google parent Alphabet all beating revenue forecasts. Apple reported revenue of $89.5 billion, up 2% year-over-year, driven by strong iPhone 15 sales. Microsoft's cloud computing division Azure saw 29% growth, contributing to total revenue of $56.5 billion. Alphabet reported $76.7 billion in revenue, with YouTube advertising revenue reaching $7.95 billion. The strong earnings come despite concerns about economic headwinds and increased competition in the AI space. Analysts note that these companies' diversified revenue streams have helped them weather market uncertainty. Stock prices rose in after-hours trading following the announcements.",
		Source:         "The Wall Street Journal",
		Category:       "Business",
		ExpectedResult: model.PredictionReal,
	},
	{
		ID:             "8",
		Title:          "BREAKING: World's Governments Secretly Controlled by Lizard People, Whistleblower Reveals All",
		Content:        "EXPLOSIVE EVIDENCE REVEALED! Former government insider exposes the TRUTH about our reptilian overlords! For centuries, shape-shifting lizard people have secretly controlled all world governments from underground bunkers. The whistleblower, who we can't name for obvious reasons, provided UNDENIABLE PROOF including blurry photos and anonymous testimonies. These reptilians feed on human fear and manipulate global events through their puppet politicians. The evidence is overwhelming - just look at how politicians never blink during speeches! They're hiding their reptilian eyes! The mainstream media won't report this because they're all reptilians too! Wake up sheeple! The time for disclosure is NOW! Share this before the lizard people delete it from the internet forever!",
		Source:         "Truth Patriots Daily",
		Category:       "Conspiracy",
		ExpectedResult: model.PredictionFake,
	},
}
